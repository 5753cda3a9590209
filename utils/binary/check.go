package binary

import (
	"encoding/binary"
	"unsafe"
)

func IsBigEndian() bool {
	var i uint16 = 0x0001
	return (*[2]byte)(unsafe.Pointer(&i))[0] == 0x00
}

// Native returns the byte order of the machine this code runs on.
func Native() binary.ByteOrder {
	if IsBigEndian() {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
