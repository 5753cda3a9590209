package word

import (
	"encoding/binary"
	"math"
)

// Numeric views over a word. The word stays a raw byte buffer everywhere
// else; these are the only places its content is given a meaning, and they
// all read it as big-endian, the order the format defines for a normalized
// record.

// FromUint32 packs v into a word in big-endian order.
func FromUint32(v uint32) Word {
	var w Word
	binary.BigEndian.PutUint32(w[:], v)
	return w
}

// FromFloat32 packs the IEEE-754 bits of f into a word in big-endian order.
func FromFloat32(f float32) Word {
	return FromUint32(math.Float32bits(f))
}

// Uint32 reads the word as a big-endian unsigned integer.
func (w Word) Uint32() uint32 {
	return binary.BigEndian.Uint32(w[:])
}

// Int32 reads the word as a big-endian two's-complement integer.
func (w Word) Int32() int32 {
	return int32(w.Uint32())
}

// Float32 reads the word as a big-endian IEEE-754 single.
func (w Word) Float32() float32 {
	return math.Float32frombits(w.Uint32())
}
