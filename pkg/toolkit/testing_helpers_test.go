package toolkit

import (
	"bytes"
	"context"
	"errors"
)

var errTestTransform = errors.New("test transform error")

type upperTransformer struct {
	calls int
}

func (ut *upperTransformer) Transform(_ context.Context, value []byte) ([]byte, error) {
	ut.calls++
	return bytes.ToUpper(value), nil
}

type failingTransformer struct {
	failOn string
}

func (ft *failingTransformer) Transform(_ context.Context, value []byte) ([]byte, error) {
	if ft.failOn == "" || string(value) == ft.failOn {
		return nil, errTestTransform
	}
	return value, nil
}

type multilineTransformer struct{}

func (mt *multilineTransformer) Transform(_ context.Context, value []byte) ([]byte, error) {
	return append(value, '\n', 'x'), nil
}

func newTestDefinition(t Transformer) *TransformerDefinition {
	return NewTransformerDefinition("test", func(ctx context.Context) (Transformer, error) {
		return t, nil
	}).SetDescription("test transformer")
}
