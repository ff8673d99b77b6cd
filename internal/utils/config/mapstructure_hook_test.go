package config

import (
	"testing"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogConfig struct {
	Level  string   `mapstructure:"level"`
	Format string   `mapstructure:"format"`
	Tags   []string `mapstructure:"tags"`
}

func decode(t *testing.T, input map[string]any) *testLogConfig {
	t.Helper()
	res := &testLogConfig{}
	decoderCfg := &mapstructure.DecoderConfig{
		Result: res,
	}
	DecoderConfig(decoderCfg)
	decoder, err := mapstructure.NewDecoder(decoderCfg)
	require.NoError(t, err)
	require.NoError(t, decoder.Decode(input))
	return res
}

func TestTrimLowerStringHookFunc(t *testing.T) {
	res := decode(t, map[string]any{
		"level":  " DEBUG ",
		"format": "Json",
	})
	assert.Equal(t, "debug", res.Level)
	assert.Equal(t, "json", res.Format)
}

func TestDecoderConfig_slice(t *testing.T) {
	res := decode(t, map[string]any{
		"tags": "a,b",
	})
	assert.Equal(t, []string{"a", "b"}, res.Tags)
}
