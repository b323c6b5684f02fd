package launcher

import (
	"fmt"
	"io"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/holiman/uint256"
	"gopkg.in/urfave/cli.v1"

	"github.com/mooori/sim-validator-assignment/sim"
	"github.com/mooori/sim-validator-assignment/validatordata"
)

func printStats(ctx *cli.Context) error {
	cfg, err := MakeStatsConfig(ctx)
	if err != nil {
		return err
	}
	return writeStats(ctx.App.Writer, cfg)
}

// writeStats prints tab separated population statistics of cfg.ValidatorData.
func writeStats(w io.Writer, cfg StatsConfig) error {
	records, err := validatordata.ReadFile(cfg.ValidatorData)
	if err != nil {
		return err
	}
	stats, validators, err := sim.ParseRawValidators(cfg.StakePerSeat, records)
	if err != nil {
		return err
	}

	p := &tabPrinter{w: w}
	p.print("num_validators", humanize.Comma(int64(stats.Validators)))
	p.print("stake", humanize.BigComma(stats.Stake.ToBig()))
	p.print("malicious_stake", humanize.BigComma(stats.MaliciousStake.ToBig()))
	p.print("malicious_stake/stake", stats.MaliciousStakeRatio().FloatString(4))
	p.print("num_seats", humanize.Comma(int64(stats.Seats)))
	p.print("num_malicious_seats", humanize.Comma(int64(stats.MaliciousSeats)))
	p.print("malicious_seats/seats", stats.MaliciousSeatRatio().FloatString(4))

	// The seat quorum is bounded by the lachesis weight range.
	if weights, err := validators.SeatWeights(); err != nil {
		log.WithError(err).Warn("Skipping seat quorum")
	} else {
		p.print("num_seat_holders", humanize.Comma(int64(weights.Len())))
		p.print("seat_quorum", humanize.Comma(int64(weights.Quorum())))
	}

	if cfg.IncludePartialSeats {
		if err := printPartialSeatStats(p, validators, cfg.StakePerSeat); err != nil {
			return err
		}
	}
	return p.err
}

func printPartialSeatStats(p *tabPrinter, validators sim.Validators, stakePerSeat *uint256.Int) error {
	partialSeats, err := sim.NewOrderedPartialSeats(validators, stakePerSeat)
	if err != nil {
		return err
	}

	var malicious int
	weights, maliciousWeights := new(big.Int), new(big.Int)
	for _, ps := range partialSeats {
		weights.Add(weights, ps.Weight.ToBig())
		if validators.Get(ps.Validator).IsMalicious {
			malicious++
			maliciousWeights.Add(maliciousWeights, ps.Weight.ToBig())
		}
	}
	price := stakePerSeat.ToBig()

	p.print("num_partial_seats", humanize.Comma(int64(len(partialSeats))))
	p.print("num_malicious_partial_seats", humanize.Comma(int64(malicious)))
	p.print("equivalent_num_seats", humanize.BigComma(new(big.Int).Quo(weights, price)))
	p.print("equivalent_num_malicious_seats", humanize.BigComma(new(big.Int).Quo(maliciousWeights, price)))
	return nil
}

// tabPrinter writes "key\tvalue" lines and keeps the first write error.
type tabPrinter struct {
	w   io.Writer
	err error
}

func (p *tabPrinter) print(key, value string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s\t%s\n", key, value)
}
