// Package codec provides the low-level byte helpers shared by the TGG
// container and its payload codecs.
//
// The package covers three concerns:
//
//   - Checksums: a 16-bit additive checksum used by the container to detect
//     corruption. It is not cryptographic.
//   - C-strings: NUL-terminated text fields, decoded one byte per rune
//     (Latin-1 widening, not UTF-8).
//   - Categorical errors: small error types that carry the expected and found
//     values of a failed check while still matching a sentinel through
//     errors.Is.
//
// # Checksum
//
// The checksum is the sum of every byte in a uint32 accumulator, truncated
// to the low 16 bits:
//
//	sum := codec.Checksum([]byte{0xFF, 0x01}) // 0x0100
//	le := codec.ChecksumBytes(data)            // [2]byte, little-endian
//
// # C-strings
//
// CString reads a fixed-size field up to its first NUL. CStringAt reads
// sequentially packed fields and returns the offset just past the
// terminator:
//
//	title, next, err := codec.CStringAt(body, 0)
//	desc, next, err := codec.CStringAt(body, next)
//
// A field with no terminator before the end of the buffer is reported as
// ErrUnterminatedString instead of yielding an offset past the buffer.
//
// # Errors
//
// CountError, ByteError and NumberError wrap a sentinel owned by the calling
// package:
//
//	var ce *codec.CountError
//	if errors.As(err, &ce) {
//	    fmt.Println(ce.Expected, ce.Found)
//	}
//	if errors.Is(err, crossword.ErrClueCountMismatch) { ... }
//
// # Thread Safety
//
// Every function in this package is pure and safe for concurrent use.
package codec
