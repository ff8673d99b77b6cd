package transformers

import (
	"github.com/greenmaskio/valuemask/pkg/generators"
)

// Transformer - value generator driven by a generators.Generator. The generator must be set before use
type Transformer interface {
	GetRequiredGeneratorByteLength() int
	SetGenerator(g generators.Generator) error
}

var (
	_ Transformer = (*Timestamp)(nil)
	_ Transformer = (*RandomUuidTransformer)(nil)
	_ Transformer = (*RandomChoiceTransformer)(nil)
)
