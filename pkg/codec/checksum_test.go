package codec

import (
	"bytes"
	"testing"
)

func TestChecksum(t *testing.T) {
	testCases := []struct {
		name     string
		data     []byte
		expected uint16
	}{
		{name: "empty", data: nil, expected: 0},
		{name: "single byte", data: []byte{0x43}, expected: 0x43},
		{name: "carry into high byte", data: []byte{0xFF, 0x01}, expected: 0x0100},
		{name: "ascii text", data: []byte("CAT"), expected: 0x43 + 0x41 + 0x54},
		// 258 * 0xFF = 0x100FE, truncated to 16 bits
		{name: "truncated past 16 bits", data: bytes.Repeat([]byte{0xFF}, 258), expected: 0x00FE},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Checksum(tc.data); got != tc.expected {
				t.Errorf("Checksum(%x) = 0x%04X, want 0x%04X", tc.data, got, tc.expected)
			}
		})
	}
}

func TestChecksumBytes_LittleEndian(t *testing.T) {
	got := ChecksumBytes([]byte{0xFF, 0xFF, 0x03})
	// 0xFF + 0xFF + 0x03 = 0x0201
	if got != [2]byte{0x01, 0x02} {
		t.Errorf("ChecksumBytes = %x, want 0102", got)
	}
}

func TestChecksum_OrderIndependent(t *testing.T) {
	a := []byte("metadata")
	b := []byte("payload")

	joined := append(append([]byte{}, a...), b...)
	swapped := append(append([]byte{}, b...), a...)

	if Checksum(joined) != Checksum(swapped) {
		t.Error("additive checksum should not depend on byte order")
	}
}
