package matroska

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupElementKnownAndUnknown(t *testing.T) {
	def, ok := LookupElement(IDSegment)
	require.True(t, ok)
	require.Equal(t, "Segment", def.Name)
	require.Equal(t, KindMaster, def.Kind)

	def, ok = LookupElement(IDTimestampScale)
	require.True(t, ok)
	require.Equal(t, IDInfo, def.Parent)
	require.Equal(t, KindUint, def.Kind)

	_, ok = LookupElement(0xDEADBEEF)
	require.False(t, ok)
}
