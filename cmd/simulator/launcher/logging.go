package launcher

import (
	"github.com/evalphobia/logrus_sentry"
	joonix "github.com/joonix/log"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/urfave/cli.v1"
)

// LoggingConfig holds the global logging flags.
type LoggingConfig struct {
	Format    string
	Verbosity string
	Color     bool
	SentryDSN string
}

func makeLoggingConfig(ctx *cli.Context) LoggingConfig {
	return LoggingConfig{
		Format:    ctx.GlobalString("log.format"),
		Verbosity: ctx.GlobalString("log.verbosity"),
		Color:     ctx.GlobalBool("log.color"),
		SentryDSN: ctx.GlobalString("sentry.dsn"),
	}
}

// setupLogging configures the global logrus logger before any command runs.
func setupLogging(ctx *cli.Context) error {
	return configureLogging(logrus.StandardLogger(), makeLoggingConfig(ctx))
}

func configureLogging(logger *logrus.Logger, cfg LoggingConfig) error {
	level, err := logrus.ParseLevel(cfg.Verbosity)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	switch cfg.Format {
	case "text":
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		formatter.ForceColors = cfg.Color
		formatter.DisableColors = !cfg.Color
		logger.SetFormatter(formatter)
	case "fluentd":
		logger.SetFormatter(joonix.NewFormatter())
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("unknown log format %s", cfg.Format)
	}

	if cfg.SentryDSN != "" {
		hook, err := logrus_sentry.NewSentryHook(cfg.SentryDSN, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return errors.Wrap(err, "sentry")
		}
		logger.AddHook(hook)
	}
	return nil
}
