package launcher

import (
	"context"

	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/mooori/sim-validator-assignment/protocol"
	"github.com/mooori/sim-validator-assignment/validatordata"
)

func downloadValidators(ctx *cli.Context) error {
	return download(context.Background(), MakeDownloadConfig(ctx))
}

// download fetches the validator set described by cfg and writes it to
// cfg.Out. Failures are not retried.
func download(ctx context.Context, cfg DownloadConfig) error {
	src, err := protocol.NewSource(cfg.Protocol, cfg.RPCURL, cfg.BlockHeight)
	if err != nil {
		return err
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	n, err := validatordata.Download(ctx, src, cfg.Out)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"protocol":   cfg.Protocol,
		"validators": n,
		"file":       cfg.Out,
	}).Info("Validator data written")
	return nil
}
