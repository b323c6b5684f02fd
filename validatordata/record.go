// Package validatordata defines the validator records a simulation consumes,
// the file they are stored in, and the contract for sources that produce them.
//
// The file is a JSON array of records:
//
//	[
//	  {
//	    "account_id": "validator_0",
//	    "stake": 1000000000000000000000000,
//	    "is_malicious": false
//	  }
//	]
//
// Stake is a JSON number of arbitrary size. Files are written pretty-printed so
// that operators can flip "is_malicious" by hand before simulating.
package validatordata

import (
	"context"
	"math/big"
)

// Record is one validator as stored in a validator data file.
type Record struct {
	AccountID   string   `json:"account_id"`
	Stake       *big.Int `json:"stake"`
	IsMalicious bool     `json:"is_malicious"`
}

// FetchedValidator is one validator as reported by a Source. Sources usually
// know nothing about maliciousness, in which case IsMalicious is nil.
type FetchedValidator struct {
	AccountID   string
	Stake       *big.Int
	IsMalicious *bool
}

// Record converts v into a file record. A missing malicious flag means the
// validator is honest.
func (v FetchedValidator) Record() Record {
	return Record{
		AccountID:   v.AccountID,
		Stake:       v.Stake,
		IsMalicious: v.IsMalicious != nil && *v.IsMalicious,
	}
}

// Records converts a batch of fetched validators.
func Records(fetched []FetchedValidator) []Record {
	records := make([]Record, len(fetched))
	for i, v := range fetched {
		records[i] = v.Record()
	}
	return records
}

// Source is implemented by protocol adapters able to list a network's
// validators, e.g. over a blockchain RPC endpoint.
type Source interface {
	FetchValidators(ctx context.Context) ([]FetchedValidator, error)
}

// Download fetches validators from src and writes them to path. It returns the
// number of records written.
func Download(ctx context.Context, src Source, path string) (int, error) {
	fetched, err := src.FetchValidators(ctx)
	if err != nil {
		return 0, err
	}
	records := Records(fetched)
	if err := WriteFile(path, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
