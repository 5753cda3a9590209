// Package word normalizes the byte order of the fixed 4-byte words used by
// packed grid formats. Files of the TDLPACK family store every value in
// 4-byte words written in the producing machine's native order, so a reader
// on the opposite architecture has to reverse each word before interpreting
// it. All operations here work on raw byte positions only; sign bits, NaN
// payloads and denormals pass through untouched.
package word

import (
	"github.com/pkg/errors"

	"gridorder/utils/binary"
)

// Width is the fixed word size in bytes. The format has no other width.
const Width = 4

var (
	ErrInvalidLength = errors.New("word: length is not a multiple of the word width")
	ErrUnknownOrder  = errors.New("word: first word matches the magic in neither byte order")
)

// Word is one 4-byte unit of a packed record. The zero value is all zero
// bytes.
type Word [Width]byte

// Swap4 returns w with byte order fully reversed. Applying it twice returns
// the original word.
func Swap4(w Word) Word {
	return Word{w[3], w[2], w[1], w[0]}
}

// Swap returns the word with byte order reversed.
func (w Word) Swap() Word {
	return Swap4(w)
}

// Swap4Bytes reverses the byte order of b in place. b must be exactly one
// word long; on ErrInvalidLength the slice is left untouched.
func Swap4Bytes(b []byte) error {
	if len(b) != Width {
		return errors.WithStack(ErrInvalidLength)
	}
	b[0], b[3] = b[3], b[0]
	b[1], b[2] = b[2], b[1]
	return nil
}

// Swap4Uint32 reverses the byte order of v, for callers that already hold
// the word as a native integer rather than raw bytes.
func Swap4Uint32(v uint32) uint32 {
	return binary.Swap32(v)
}

// NeedSwap reports whether a stream whose first word should equal magic was
// written in the opposite byte order. It returns ErrUnknownOrder when the
// word matches the magic in neither order, which usually means the stream is
// not in the expected format at all.
func NeedSwap(first, magic Word) (bool, error) {
	if first == magic {
		return false, nil
	}
	if Swap4(first) == magic {
		return true, nil
	}
	return false, errors.WithStack(ErrUnknownOrder)
}
