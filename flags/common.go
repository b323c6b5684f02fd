package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// CommonFlags returns the global flags shared by all commands.

func CommonFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "log.format",
			Usage: "Log output format (text|json|fluentd)",
			Value: "text",
		},
		cli.StringFlag{
			Name:  "log.verbosity",
			Usage: "Logging verbosity (trace|debug|info|warn|error|fatal|panic)",
			Value: "info",
		},
		cli.BoolFlag{
			Name:  "log.color",
			Usage: "Enable colored log output",
		},
		cli.StringFlag{
			Name:  "sentry.dsn",
			Usage: "Report error level log entries to this Sentry DSN",
		},
	}
}
