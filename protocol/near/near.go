// Package near downloads validator data from a NEAR RPC node.
//
// The adapter calls the `validators` JSON-RPC method, documented at
// https://docs.near.org/api/rpc/network#validation-status, and keeps only the
// fields a simulation needs.
package near

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mooori/sim-validator-assignment/validatordata"
)

var log = logrus.WithField("prefix", "near")

var (
	// ErrHTTPStatus is returned when the RPC answers with a non-success status.
	ErrHTTPStatus = errors.New("unexpected HTTP status")
	// ErrRPC is returned when a successful HTTP response carries an error payload.
	ErrRPC = errors.New("rpc error")
	// ErrMalformedStake is returned when a validator's stake is not a base-10
	// integer.
	ErrMalformedStake = errors.New("malformed stake")
)

const validatorsMethod = "validators"

// Protocol downloads validator data from a NEAR RPC endpoint.
type Protocol struct {
	rpcURL string
	block  *uint64
}

// New returns an adapter querying rpcURL. With a nil block the latest block is
// queried; otherwise block must be the last block of an epoch, which is what
// the RPC requires for historical queries.
func New(rpcURL string, block *uint64) *Protocol {
	return &Protocol{rpcURL: rpcURL, block: block}
}

// rpcValidator holds the fields of a `current_validators` entry used here.
// The RPC encodes stake (yoctoNEAR, a u128) as a decimal string.
type rpcValidator struct {
	AccountID string `json:"account_id"`
	Stake     string `json:"stake"`
}

type rpcValidatorsResult struct {
	CurrentValidators []rpcValidator `json:"current_validators"`
}

// FetchValidators implements validatordata.Source.
func (p *Protocol) FetchValidators(ctx context.Context) ([]validatordata.FetchedValidator, error) {
	client, err := rpc.DialHTTP(p.rpcURL)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", p.rpcURL)
	}
	defer client.Close()

	log.WithFields(logrus.Fields{
		"url":   p.rpcURL,
		"block": blockField(p.block),
	}).Debug("Requesting validators")

	// A nil block serializes to [null], which selects the latest block.
	var result rpcValidatorsResult
	if err := client.CallContext(ctx, &result, validatorsMethod, p.block); err != nil {
		return nil, callError(err)
	}

	validators := make([]validatordata.FetchedValidator, 0, len(result.CurrentValidators))
	for _, v := range result.CurrentValidators {
		stake, ok := new(big.Int).SetString(v.Stake, 10)
		if !ok || stake.Sign() < 0 {
			return nil, errors.Wrapf(ErrMalformedStake, "validator %s: %q", v.AccountID, v.Stake)
		}
		validators = append(validators, validatordata.FetchedValidator{
			AccountID: v.AccountID,
			Stake:     stake,
		})
	}
	return validators, nil
}

// callError maps transport and RPC failures onto the package errors, keeping
// status, body and error payload in the message.
func callError(err error) error {
	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) {
		return errors.Wrapf(ErrHTTPStatus, "expected HTTP status code 200, got %s with response body\n\t%s",
			httpErr.Status, httpErr.Body)
	}
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		msg := errors.Wrapf(ErrRPC, "code %d: %s", rpcErr.ErrorCode(), rpcErr.Error())
		var dataErr rpc.DataError
		if errors.As(err, &dataErr) && dataErr.ErrorData() != nil {
			return errors.Wrapf(msg, "data %v", dataErr.ErrorData())
		}
		return msg
	}
	return errors.Wrap(err, "validators request")
}

func blockField(block *uint64) interface{} {
	if block == nil {
		return "latest"
	}
	return *block
}
