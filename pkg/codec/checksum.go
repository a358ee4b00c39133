package codec

import "encoding/binary"

// Checksum computes the 16-bit additive checksum of data.
// Bytes are summed into a uint32 and the result is truncated to the low 16 bits.
func Checksum(data []byte) uint16 {
	var sum uint32
	for _, b := range data {
		sum += uint32(b)
	}
	return uint16(sum)
}

// ChecksumBytes returns the checksum of data encoded little-endian
func ChecksumBytes(data []byte) [2]byte {
	var out [2]byte
	binary.LittleEndian.PutUint16(out[:], Checksum(data))
	return out
}
