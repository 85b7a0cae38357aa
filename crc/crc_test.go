package crc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeVerifyRoundTrip(t *testing.T) {
	body := []byte("the quick brown fox")
	sum := Compute(body)
	require.Len(t, sum, 4)
	require.True(t, Verify(sum, body))
}

func TestVerifyRejectsTamperedBody(t *testing.T) {
	body := []byte("the quick brown fox")
	sum := Compute(body)
	require.False(t, Verify(sum, []byte("the quick brown foxx")))
}

func TestVerifyRejectsWrongLength(t *testing.T) {
	require.False(t, Verify([]byte{1, 2, 3}, []byte("x")))
}
