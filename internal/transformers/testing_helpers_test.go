package transformers

import (
	"errors"
)

var errTestGenerator = errors.New("test generator error")

// constGenerator - always returns the same bytes
type constGenerator struct {
	data []byte
}

func (cg *constGenerator) Generate([]byte) ([]byte, error) {
	return cg.data, nil
}

func (cg *constGenerator) Size() int {
	return len(cg.data)
}

type failingGenerator struct {
	size int
}

func (fg *failingGenerator) Generate([]byte) ([]byte, error) {
	return nil, errTestGenerator
}

func (fg *failingGenerator) Size() int {
	return fg.size
}
