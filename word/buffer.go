package word

import (
	"github.com/pkg/errors"
)

// SwapBuffer reverses the byte order of every 4-byte word in b, in place.
// Words are swapped independently; no byte ever moves across a word
// boundary. b must hold a whole number of words; on ErrInvalidLength the
// buffer is left untouched.
func SwapBuffer(b []byte) error {
	if len(b)%Width != 0 {
		return errors.WithStack(ErrInvalidLength)
	}
	for i := 0; i < len(b); i += Width {
		b[i], b[i+3] = b[i+3], b[i]
		b[i+1], b[i+2] = b[i+2], b[i+1]
	}
	return nil
}

// SwapBufferCopy is SwapBuffer over a fresh copy, leaving b unchanged.
func SwapBufferCopy(b []byte) ([]byte, error) {
	if len(b)%Width != 0 {
		return nil, errors.WithStack(ErrInvalidLength)
	}
	out := make([]byte, len(b))
	for i := 0; i < len(b); i += Width {
		out[i] = b[i+3]
		out[i+1] = b[i+2]
		out[i+2] = b[i+1]
		out[i+3] = b[i]
	}
	return out, nil
}

// SwapWords reverses the byte order of every word in ws, returning a new
// slice of the same length with the i-th output word equal to the i-th
// input word swapped.
func SwapWords(ws []Word) []Word {
	out := make([]Word, len(ws))
	for i, w := range ws {
		out[i] = Swap4(w)
	}
	return out
}
