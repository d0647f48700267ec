// Package loader turns a raw byte stream into the big-endian 32-bit
// word sequence the vm package consumes as segment zero. It is
// independent of the engine: the engine is an external collaborator,
// not a dependency (spec.md section 1, "out of scope: external
// collaborators").
package loader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrMisalignedProgram indicates the byte stream's length is not a
// multiple of four, so it cannot be grouped into whole 32-bit words.
var ErrMisalignedProgram = errors.New("loader: program length is not a multiple of four bytes")

// Load reads every byte from r and groups it into big-endian 32-bit
// words, most-significant byte first, per spec.md section 6.
func Load(r io.Reader) ([]uint32, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrMisalignedProgram, len(raw))
	}
	words := make([]uint32, len(raw)/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(raw[i*4 : i*4+4])
	}
	return words, nil
}
