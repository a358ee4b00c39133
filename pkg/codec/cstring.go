package codec

import (
	"errors"
	"strings"
)

// ErrUnterminatedString indicates a C-string ran to the end of its buffer without a NUL
var ErrUnterminatedString = errors.New("unterminated string")

// CString decodes bytes up to the first NUL or the end of data.
// Each byte becomes one rune, so the result is Latin-1 rather than UTF-8 aware.
func CString(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		if b == 0 {
			break
		}
		sb.WriteRune(rune(b))
	}
	return sb.String()
}

// CStringAt decodes a NUL-terminated string starting at offset start and
// returns it along with the offset of the byte following the terminator.
func CStringAt(data []byte, start int) (string, int, error) {
	if start < 0 || start >= len(data) {
		return "", start, ErrUnterminatedString
	}

	var sb strings.Builder
	for i := start; i < len(data); i++ {
		if data[i] == 0 {
			return sb.String(), i + 1, nil
		}
		sb.WriteRune(rune(data[i]))
	}

	return "", len(data), ErrUnterminatedString
}

// IsCStringSafe reports whether s can be written as a C-string and read back
// unchanged: every rune is ASCII and none is NUL.
func IsCStringSafe(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 || s[i] > 0x7F {
			return false
		}
	}
	return true
}

// AppendCString appends s and a NUL terminator to dst
func AppendCString(dst []byte, s string) []byte {
	dst = append(dst, s...)
	return append(dst, 0)
}
