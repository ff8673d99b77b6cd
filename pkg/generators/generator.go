package generators

// Generator - source of bytes for value transformers. The input data may be ignored by random generators,
// digest generators use it as the hashed payload.
type Generator interface {
	Generate([]byte) ([]byte, error)
	Size() int
}
