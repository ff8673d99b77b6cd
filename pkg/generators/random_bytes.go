package generators

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mathrand "math/rand"
)

// RandomBytes - seeded pseudo random generator. The same seed produces the same sequence, so it is used
// where reproducibility is required (tests)
type RandomBytes struct {
	r     *mathrand.Rand
	size  int
	iters int
}

func NewRandomBytes(seed int64, size int) *RandomBytes {
	iters := size / 8
	if size%8 > 0 {
		iters += 1
	}
	return &RandomBytes{
		r:     mathrand.New(mathrand.NewSource(seed)),
		size:  size,
		iters: iters,
	}
}

func (br *RandomBytes) Generate(data []byte) ([]byte, error) {
	res := make([]byte, 0, br.iters*8)
	buf := make([]byte, 8)
	for i := 0; i < br.iters; i++ {
		binary.LittleEndian.PutUint64(buf, br.r.Uint64())
		res = append(res, buf...)
	}
	return res[:br.size], nil
}

func (br *RandomBytes) Size() int {
	return br.size
}

// CryptoRandom - generator backed by crypto/rand. Every call is independent and the output is not
// reproducible
type CryptoRandom struct {
	size int
}

func NewCryptoRandom(size int) *CryptoRandom {
	return &CryptoRandom{
		size: size,
	}
}

func (cr *CryptoRandom) Generate(data []byte) ([]byte, error) {
	res := make([]byte, cr.size)
	if _, err := rand.Read(res); err != nil {
		return nil, fmt.Errorf("error reading from crypto source: %w", err)
	}
	return res, nil
}

func (cr *CryptoRandom) Size() int {
	return cr.size
}
