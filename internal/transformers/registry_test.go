package transformers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/valuemask/internal/transformers/utils"
	"github.com/greenmaskio/valuemask/pkg/toolkit"
)

func TestDefaultTransformerRegistry(t *testing.T) {
	assert.Equal(t, []string{DateTransformerName, EmailTransformerName}, utils.DefaultTransformerRegistry.Names())
}

func TestRegisteredTransformers_empty_value(t *testing.T) {
	for name, def := range utils.DefaultTransformerRegistry.M {
		t.Run(name, func(t *testing.T) {
			tr, err := def.New(context.Background())
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				res, err := toolkit.Apply(context.Background(), tr, []byte{})
				require.NoError(t, err)
				assert.Equal(t, []byte{}, res)
			}
		})
	}
}
