package generators

import (
	"encoding/binary"
)

func BuildBytesFromUint64(value uint64) []byte {
	res := make([]byte, 8)
	binary.LittleEndian.PutUint64(res, value)
	return res
}

// BuildUint64FromBytes - decode bytes array to uint64 representation. In case there is less than 8 bytes
// the rest is filled with zeroes
func BuildUint64FromBytes(data []byte) (res uint64) {
	intBytes := data
	if len(data) != 8 {
		intBytes = make([]byte, 8)
		copy(intBytes, data)
	}

	return binary.LittleEndian.Uint64(intBytes)
}
