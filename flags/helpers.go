package flags

import (
	"os"

	cli "gopkg.in/urfave/cli.v1"
)

// NewApp creates the command line application with the global flags and no
// default action; work is done by the subcommands.
func NewApp() *cli.App {

	app := cli.NewApp()
	app.Name = "sim-validator-assignment"
	app.Usage = "Simulate the security of random validator assignment to shards"
	app.Version = "0.1.0"
	app.Writer = os.Stdout
	app.Flags = CommonFlags()
	return app

}
