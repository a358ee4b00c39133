package crossword

import (
	"github.com/ssargent/tgg/pkg/codec"
)

// fixedHeaderSize covers width, height and total clue count
const fixedHeaderSize = 3

// clueSeparator ends a clue list; it sits where the next clue number would be
const clueSeparator = 0x00

// Encode serializes p in the crossword payload layout:
//
//	[width][height][total clues]
//	{[number][text...][0x00]}* [0x00]   horizontal
//	{[number][text...][0x00]}* [0x00]   vertical
//	{[number][value]} * width*height   row-major grid
func Encode(p *Puzzle) []byte {
	buf := make([]byte, 0, p.EncodedSize())

	buf = append(buf, p.width, p.height, p.totalClues)
	buf = appendClues(buf, p.horizontal)
	buf = appendClues(buf, p.vertical)

	for _, row := range p.grid {
		for _, box := range row {
			buf = append(buf, box.Number, box.Value.Byte())
		}
	}

	return buf
}

// MarshalBinary implements encoding.BinaryMarshaler
func (p *Puzzle) MarshalBinary() ([]byte, error) {
	return Encode(p), nil
}

// EncodedSize returns the number of bytes Encode produces for p
func (p *Puzzle) EncodedSize() int {
	size := fixedHeaderSize + 2 // two clue separators
	for _, c := range p.horizontal {
		size += 2 + len(c.Text)
	}
	for _, c := range p.vertical {
		size += 2 + len(c.Text)
	}
	return size + int(p.width)*int(p.height)*2
}

func appendClues(buf []byte, clues []Clue) []byte {
	for _, c := range clues {
		buf = append(buf, c.Number)
		buf = codec.AppendCString(buf, c.Text)
	}
	return append(buf, clueSeparator)
}

// Decode parses a crossword payload. Byte counts and the declared clue total
// are checked while parsing; the result then goes through Validate, so a
// decoded puzzle satisfies the same rules as one built with New.
func Decode(data []byte) (*Puzzle, error) {
	if len(data) < fixedHeaderSize {
		return nil, &codec.CountError{Err: ErrUnexpectedEndOfData, Expected: fixedHeaderSize, Found: len(data)}
	}

	width, height, declared := data[0], data[1], data[2]
	if width == 0 || height == 0 {
		return nil, ErrWidthOrHeightZero
	}
	if declared == 0 {
		return nil, ErrTotalCluesZero
	}

	offset := fixedHeaderSize

	horizontal, offset, err := decodeClues(data, offset)
	if err != nil {
		return nil, err
	}

	vertical, offset, err := decodeClues(data, offset)
	if err != nil {
		return nil, err
	}

	if found := len(horizontal) + len(vertical); found != int(declared) {
		return nil, &codec.CountError{Err: ErrClueCountMismatch, Expected: int(declared), Found: found}
	}

	gridBytes := data[offset:]
	expected := int(width) * int(height) * 2
	if len(gridBytes) != expected {
		return nil, &codec.CountError{Err: ErrNotEnoughCrosswordBytes, Expected: expected, Found: len(gridBytes)}
	}

	grid := make([][]Box, height)
	for r := range grid {
		grid[r] = make([]Box, width)
		for c := range grid[r] {
			i := (r*int(width) + c) * 2
			value, err := valueFromByte(gridBytes[i+1])
			if err != nil {
				return nil, err
			}
			box, err := NewBox(gridBytes[i], value)
			if err != nil {
				return nil, err
			}
			grid[r][c] = box
		}
	}

	p := &Puzzle{
		width:      width,
		height:     height,
		totalClues: declared,
		horizontal: horizontal,
		vertical:   vertical,
		grid:       grid,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// decodeClues reads (number, text) pairs from offset until the separator
// and returns the clues with the offset past the separator.
func decodeClues(data []byte, offset int) ([]Clue, int, error) {
	var clues []Clue
	for {
		if offset >= len(data) {
			return nil, offset, ErrUnexpectedEndOfData
		}

		number := data[offset]
		offset++
		if number == clueSeparator {
			return clues, offset, nil
		}

		text, next, err := codec.CStringAt(data, offset)
		if err != nil {
			return nil, offset, &codec.NumberError{Err: err, Number: number}
		}

		clues = append(clues, Clue{Number: number, Text: text})
		offset = next
	}
}
