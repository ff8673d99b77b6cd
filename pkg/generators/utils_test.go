package generators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildUint64FromBytes(t *testing.T) {
	value := uint64(123)
	intBytes := BuildBytesFromUint64(value)[:3]
	res := BuildUint64FromBytes(intBytes)
	require.Equal(t, value, res)
}
