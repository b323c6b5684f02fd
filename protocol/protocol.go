// Package protocol selects the adapter that downloads validator data for a
// given blockchain protocol.
package protocol

import (
	"github.com/pkg/errors"

	"github.com/mooori/sim-validator-assignment/protocol/near"
	"github.com/mooori/sim-validator-assignment/validatordata"
)

// Near is the selector of the NEAR adapter.
const Near = "near"

// ErrUnknownProtocol is returned for selectors without an adapter.
var ErrUnknownProtocol = errors.New("unknown protocol")

// Names lists the supported selectors.
func Names() []string {
	return []string{Near}
}

// NewSource returns the adapter for name, querying rpcURL at block (nil for the
// latest block).
func NewSource(name, rpcURL string, block *uint64) (validatordata.Source, error) {
	if rpcURL == "" {
		return nil, errors.New("rpc url is required")
	}
	switch name {
	case Near:
		return near.New(rpcURL, block), nil
	default:
		return nil, errors.Wrapf(ErrUnknownProtocol, "%q (valid: %v)", name, Names())
	}
}
