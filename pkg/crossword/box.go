package crossword

import (
	"fmt"

	"github.com/ssargent/tgg/pkg/codec"
)

// Kind identifies what a grid box holds
type Kind uint8

const (
	KindEmpty Kind = iota
	KindSolid
	KindLetter
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindSolid:
		return "solid"
	case KindLetter:
		return "letter"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Encoded box value bytes
const (
	EmptyByte byte = 0x20
	SolidByte byte = 0x23
)

// Value is the content of a box: empty, solid, or a letter
type Value struct {
	Kind   Kind
	Letter rune // set only when Kind is KindLetter
}

// Empty returns an empty (writable, unfilled) box value
func Empty() Value {
	return Value{Kind: KindEmpty}
}

// Solid returns a blocked box value
func Solid() Value {
	return Value{Kind: KindSolid}
}

// Letter returns a letter box value. The letter is validated by NewBox.
func Letter(r rune) Value {
	return Value{Kind: KindLetter, Letter: r}
}

// Byte returns the encoded form of v
func (v Value) Byte() byte {
	switch v.Kind {
	case KindSolid:
		return SolidByte
	case KindLetter:
		return byte(v.Letter)
	default:
		return EmptyByte
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindSolid:
		return "#"
	case KindLetter:
		return string(v.Letter)
	default:
		return " "
	}
}

// validate rejects unknown kinds, then checks letter values: ASCII first,
// then alphabetic, then uppercase
func (v Value) validate() error {
	switch v.Kind {
	case KindEmpty, KindSolid:
		return nil
	case KindLetter:
	default:
		return &codec.NumberError{Err: ErrInvalidBoxKind, Number: uint8(v.Kind)}
	}
	r := v.Letter
	if r > 0x7F || r < 0 {
		return ErrNonASCII
	}
	if !(r >= 'A' && r <= 'Z') && !(r >= 'a' && r <= 'z') {
		return ErrNonAlphabetic
	}
	if r >= 'a' && r <= 'z' {
		return ErrNonUppercase
	}
	return nil
}

func valueFromByte(b byte) (Value, error) {
	switch {
	case b == EmptyByte:
		return Empty(), nil
	case b == SolidByte:
		return Solid(), nil
	case (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z'):
		return Letter(rune(b)), nil
	default:
		return Value{}, &codec.ByteError{Err: ErrInvalidBoxByte, Found: b}
	}
}

// Box is one grid cell. Number 0 means the cell is unnumbered.
type Box struct {
	Number uint8
	Value  Value
}

// NewBox creates a box, rejecting letters that are not ASCII uppercase
func NewBox(number uint8, value Value) (Box, error) {
	if err := value.validate(); err != nil {
		return Box{}, err
	}
	return Box{Number: number, Value: value}, nil
}
