package validatordata

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrMalformedFile is returned for validator data that does not decode into
// records.
var ErrMalformedFile = errors.New("malformed validator data")

// ReadFile loads the records stored at path.
func ReadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read validator data")
	}
	records, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return records, nil
}

// WriteFile stores records at path, replacing any existing file.
func WriteFile(path string, records []Record) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "write validator data")
	}
	return nil
}

// Decode parses a JSON array of records. Every record must carry a stake.
func Decode(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(ErrMalformedFile, "%v", err)
	}
	for i, r := range records {
		if r.Stake == nil {
			return nil, errors.Wrapf(ErrMalformedFile, "record %d (%q) has no stake", i, r.AccountID)
		}
	}
	return records, nil
}

// Encode renders records as indented JSON followed by a newline.
func Encode(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encode validator data")
	}
	return append(data, '\n'), nil
}
