package flags

import (
	"time"

	"gopkg.in/urfave/cli.v1"
)

// DownloadFlags covers fetching validator data from a protocol's RPC endpoint.

func DownloadFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "protocol",
			Usage: "Protocol whose validators are downloaded (near)",
			Value: "near",
		},
		cli.StringFlag{
			Name:  "rpc-url",
			Usage: "JSON-RPC endpoint of a node of the protocol",
		},
		cli.Uint64Flag{
			Name:  "block-height",
			Usage: "Block height to read the validator set at (latest if unset)",
		},
		cli.StringFlag{
			Name:  "out",
			Usage: "File the validator data is written to",
			Value: "validators.json",
		},
		cli.DurationFlag{
			Name:  "rpc.timeout",
			Usage: "Timeout of the whole download",
			Value: 30 * time.Second,
		},
	}
}
