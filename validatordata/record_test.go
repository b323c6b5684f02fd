package validatordata

import (
	"context"
	"errors"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type staticSource struct {
	validators []FetchedValidator
	err        error
}

func (s staticSource) FetchValidators(context.Context) ([]FetchedValidator, error) {
	return s.validators, s.err
}

func TestFetchedValidator_Record(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name string
		flag *bool
		want bool
	}{
		{"absent flag is honest", nil, false},
		{"explicit honest", &no, false},
		{"explicit malicious", &yes, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FetchedValidator{AccountID: "a", Stake: big.NewInt(1), IsMalicious: tt.flag}
			require.Equal(t, tt.want, v.Record().IsMalicious)
		})
	}
}

func TestDownload(t *testing.T) {
	require := require.New(t)

	src := staticSource{validators: []FetchedValidator{
		{AccountID: "node0.pool", Stake: big.NewInt(1000)},
		{AccountID: "node1.pool", Stake: big.NewInt(2000)},
	}}
	path := filepath.Join(t.TempDir(), "out.json")

	n, err := Download(context.Background(), src, path)
	require.NoError(err)
	require.Equal(2, n)

	records, err := ReadFile(path)
	require.NoError(err)
	require.Equal("node1.pool", records[1].AccountID)
	require.False(records[1].IsMalicious)
}

func TestDownload_sourceError(t *testing.T) {
	boom := errors.New("boom")
	path := filepath.Join(t.TempDir(), "out.json")

	_, err := Download(context.Background(), staticSource{err: boom}, path)
	require.ErrorIs(t, err, boom)
	require.NoFileExists(t, path)
}
