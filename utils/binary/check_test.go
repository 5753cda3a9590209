package binary

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNative(t *testing.T) {
	// Native must agree with how encoding/binary reads memory the probe
	// wrote: a uint16 1 starts with a zero byte only on big-endian.
	b := []byte{0x12, 0x34}
	if IsBigEndian() {
		assert.Equal(t, binary.BigEndian, Native())
		assert.Equal(t, uint16(0x1234), Native().Uint16(b))
	} else {
		assert.Equal(t, binary.LittleEndian, Native())
		assert.Equal(t, uint16(0x3412), Native().Uint16(b))
	}
}
