package contentenc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZlibRoundTrip(t *testing.T) {
	codec, err := Lookup(uint64(AlgoZlib))
	require.NoError(t, err)

	data := bytes.Repeat([]byte("hello matroska "), 100)
	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(data))

	got, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestLZ4RoundTrip(t *testing.T) {
	codec, err := Lookup(uint64(AlgoLZ4Priv))
	require.NoError(t, err)

	data := bytes.Repeat([]byte("hello matroska "), 100)
	compressed, err := codec.Compress(data)
	require.NoError(t, err)

	got, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestLookupUnsupportedAlgo(t *testing.T) {
	_, err := Lookup(2) // lzo1x, not implemented
	require.Error(t, err)
}
