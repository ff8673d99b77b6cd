package transformers

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/greenmaskio/valuemask/pkg/generators"
)

const uuidTransformerRequiredLength = 16

// RandomUuidTransformer - builds version 4 UUID from the generated bytes
type RandomUuidTransformer struct {
	byteLength int
	generator  generators.Generator
}

func NewRandomUuidTransformer() *RandomUuidTransformer {
	return &RandomUuidTransformer{
		byteLength: uuidTransformerRequiredLength,
	}
}

func (ut *RandomUuidTransformer) Transform(data []byte) (uuid.UUID, error) {
	if ut.generator == nil {
		return uuid.UUID{}, fmt.Errorf("generator is not set")
	}
	resBytes, err := ut.generator.Generate(data)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to generate random bytes: %w", err)
	}
	res, err := uuid.FromBytes(resBytes[:uuidTransformerRequiredLength])
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to build uuid: %w", err)
	}
	res[6] = (res[6] & 0x0f) | 0x40 // Version 4
	res[8] = (res[8] & 0x3f) | 0x80 // Variant is 10
	return res, nil
}

func (ut *RandomUuidTransformer) GetRequiredGeneratorByteLength() int {
	return ut.byteLength
}

func (ut *RandomUuidTransformer) SetGenerator(g generators.Generator) error {
	if g.Size() < ut.byteLength {
		return fmt.Errorf("requested byte length (%d) higher than generator can produce (%d)", ut.byteLength, g.Size())
	}
	ut.generator = g
	return nil
}
