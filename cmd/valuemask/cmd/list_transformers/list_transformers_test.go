package list_transformers

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/greenmaskio/valuemask/internal/transformers/utils"
	"github.com/greenmaskio/valuemask/pkg/toolkit"
)

type noopTransformer struct{}

func (nt *noopTransformer) Transform(_ context.Context, value []byte) ([]byte, error) {
	return value, nil
}

func newTestRegistry(t *testing.T) *utils.TransformerRegistry {
	t.Helper()
	r := utils.NewTransformerRegistry()
	newFunc := func(context.Context) (toolkit.Transformer, error) {
		return &noopTransformer{}, nil
	}
	require.NoError(t, r.Register(toolkit.NewTransformerDefinition("b", newFunc).SetDescription("second")))
	require.NoError(t, r.Register(toolkit.NewTransformerDefinition("a", newFunc).SetDescription("first")))
	return r
}

func setFormat(t *testing.T, v string) {
	t.Helper()
	orig := format
	format = v
	t.Cleanup(func() {
		format = orig
	})
}

func TestRun_json(t *testing.T) {
	setFormat(t, JsonFormatName)
	buf := &bytes.Buffer{}
	require.NoError(t, run(buf, newTestRegistry(t), nil))

	var res []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, []map[string]string{
		{"name": "a", "description": "first"},
		{"name": "b", "description": "second"},
	}, res)
}

func TestRun_yaml(t *testing.T) {
	setFormat(t, YamlFormatName)
	buf := &bytes.Buffer{}
	require.NoError(t, run(buf, newTestRegistry(t), []string{"b"}))

	var res []map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, []map[string]string{{"name": "b", "description": "second"}}, res)
}

func TestRun_text(t *testing.T) {
	setFormat(t, TextFormatName)
	buf := &bytes.Buffer{}
	require.NoError(t, run(buf, newTestRegistry(t), nil))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("first")), bytes.Index(buf.Bytes(), []byte("second")))
}

func TestRun_errors(t *testing.T) {
	setFormat(t, TextFormatName)
	err := run(&bytes.Buffer{}, newTestRegistry(t), []string{"unknown"})
	require.ErrorContains(t, err, "unknown transformer name")

	setFormat(t, "xml")
	err = run(&bytes.Buffer{}, newTestRegistry(t), nil)
	require.ErrorContains(t, err, "unknown format")
}
