package transformers

import (
	"errors"
	"fmt"

	"github.com/greenmaskio/valuemask/pkg/generators"
)

type RandomChoiceTransformer struct {
	values     []string
	byteLength int
	generator  generators.Generator
}

func NewRandomChoiceTransformer(values []string) (*RandomChoiceTransformer, error) {
	if len(values) == 0 {
		return nil, errors.New("values list cannot be empty")
	}
	return &RandomChoiceTransformer{
		values:     values,
		byteLength: 8,
	}, nil
}

func (rc *RandomChoiceTransformer) Transform(original []byte) (string, error) {
	if rc.generator == nil {
		return "", errors.New("generator is not set")
	}
	resBytes, err := rc.generator.Generate(original)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	idx := generators.BuildUint64FromBytes(resBytes[:rc.byteLength]) % uint64(len(rc.values))
	return rc.values[idx], nil
}

func (rc *RandomChoiceTransformer) GetRequiredGeneratorByteLength() int {
	return rc.byteLength
}

func (rc *RandomChoiceTransformer) SetGenerator(g generators.Generator) error {
	if g.Size() < rc.byteLength {
		return fmt.Errorf("requested byte length (%d) higher than generator can produce (%d)", rc.byteLength, g.Size())
	}
	rc.generator = g
	return nil
}
