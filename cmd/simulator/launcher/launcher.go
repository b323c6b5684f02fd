package launcher

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/mooori/sim-validator-assignment/flags"
)

var log = logrus.WithField("prefix", "launcher")

// NewApp assembles the command line application and its commands.
func NewApp() *cli.App {
	app := flags.NewApp()
	app.Before = setupLogging
	app.Commands = []cli.Command{
		{
			Name:   "run",
			Usage:  "Simulate random validator assignment and report the share of corrupted shards",
			Flags:  append(flags.SimulationFlags(), flags.MetricsFlags()...),
			Action: runSimulation,
		},
		{
			Name:   "download",
			Usage:  "Download the validator set of a protocol into a validator data file",
			Flags:  flags.DownloadFlags(),
			Action: downloadValidators,
		},
		{
			Name:   "stats",
			Usage:  "Print seat statistics of a validator data file",
			Flags:  flags.StatsFlags(),
			Action: printStats,
		},
	}
	return app
}

// Launch parses args and runs the selected command.
func Launch(args []string) error {
	return NewApp().Run(args)
}
