package transformers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowList_Contains(t *testing.T) {
	al := NewAllowList("AB", "CD")
	assert.Equal(t, 2, al.Len())
	assert.True(t, al.Contains("AB"))
	assert.True(t, al.Contains("CD"))
	assert.False(t, al.Contains("ab"))
	assert.False(t, al.Contains("A"))
	assert.False(t, al.Contains(""))
}

func TestDefaultEmailAllowList(t *testing.T) {
	assert.Equal(t, 3, defaultEmailAllowList.Len())
}
