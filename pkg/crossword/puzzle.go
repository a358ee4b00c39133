package crossword

import (
	"math"
	"strings"

	"github.com/ssargent/tgg/pkg/codec"
)

// Clue is a numbered hint. Number links the clue to the grid box where its answer starts.
type Clue struct {
	Number uint8
	Text   string
}

// Direction is the reading direction of an answer
type Direction uint8

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

// Puzzle is a validated crossword: grid dimensions, clues in both
// directions, and the grid itself. A Puzzle is immutable; accessors
// return copies.
type Puzzle struct {
	width      uint8
	height     uint8
	totalClues uint8
	horizontal []Clue
	vertical   []Clue
	grid       [][]Box
}

// New validates the given grid and clues and returns a Puzzle.
// The total clue count is computed from the clue slices.
func New(width, height uint8, horizontal, vertical []Clue, grid [][]Box) (*Puzzle, error) {
	total := len(horizontal) + len(vertical)
	if total > math.MaxUint8 {
		return nil, &codec.CountError{Err: ErrTooManyClues, Expected: math.MaxUint8, Found: total}
	}

	p := &Puzzle{
		width:      width,
		height:     height,
		totalClues: uint8(total),
		horizontal: cloneClues(horizontal),
		vertical:   cloneClues(vertical),
		grid:       cloneGrid(grid),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks every structural and cross-reference rule of the puzzle.
// It runs both when a puzzle is built and after one is decoded.
func (p *Puzzle) Validate() error {
	if p.width == 0 || p.height == 0 {
		return ErrWidthOrHeightZero
	}

	if len(p.grid) != int(p.height) {
		return &codec.CountError{Err: ErrHeightMismatch, Expected: int(p.height), Found: len(p.grid)}
	}

	numbers := make(map[uint8]struct{})
	for _, row := range p.grid {
		if len(row) != int(p.width) {
			return &codec.CountError{Err: ErrWidthMismatch, Expected: int(p.width), Found: len(row)}
		}
		for _, box := range row {
			if err := box.Value.validate(); err != nil {
				return err
			}
			if box.Number == 0 {
				continue
			}
			if _, seen := numbers[box.Number]; seen {
				return &codec.NumberError{Err: ErrDuplicateNumber, Number: box.Number}
			}
			numbers[box.Number] = struct{}{}
		}
	}

	total := len(p.horizontal) + len(p.vertical)
	if total == 0 {
		return ErrTotalCluesZero
	}
	if total != int(p.totalClues) {
		return &codec.CountError{Err: ErrClueCountMismatch, Expected: int(p.totalClues), Found: total}
	}

	if err := validateClues(p.vertical, numbers, ErrVerticalClueInvalidNumber, ErrVerticalClueDuplicate); err != nil {
		return err
	}
	return validateClues(p.horizontal, numbers, ErrHorizontalClueInvalidNumber, ErrHorizontalClueDuplicate)
}

func validateClues(clues []Clue, numbers map[uint8]struct{}, errInvalid, errDuplicate error) error {
	seen := make(map[uint8]struct{}, len(clues))
	for _, clue := range clues {
		if clue.Text == "" {
			return &codec.NumberError{Err: ErrEmptyClueText, Number: clue.Number}
		}
		if !codec.IsCStringSafe(clue.Text) {
			return &codec.NumberError{Err: ErrInvalidClueText, Number: clue.Number}
		}
		if _, ok := numbers[clue.Number]; !ok {
			return &codec.NumberError{Err: errInvalid, Number: clue.Number}
		}
		if _, dup := seen[clue.Number]; dup {
			return &codec.NumberError{Err: errDuplicate, Number: clue.Number}
		}
		seen[clue.Number] = struct{}{}
	}
	return nil
}

// Width returns the number of columns
func (p *Puzzle) Width() uint8 { return p.width }

// Height returns the number of rows
func (p *Puzzle) Height() uint8 { return p.height }

// TotalClues returns the number of horizontal and vertical clues combined
func (p *Puzzle) TotalClues() uint8 { return p.totalClues }

// Horizontal returns a copy of the across clues in order
func (p *Puzzle) Horizontal() []Clue { return cloneClues(p.horizontal) }

// Vertical returns a copy of the down clues in order
func (p *Puzzle) Vertical() []Clue { return cloneClues(p.vertical) }

// Grid returns a copy of the grid, row-major
func (p *Puzzle) Grid() [][]Box { return cloneGrid(p.grid) }

// Rows renders the grid one string per row: letters as themselves,
// '#' for solid boxes and ' ' for empty ones.
func (p *Puzzle) Rows() []string {
	rows := make([]string, len(p.grid))
	for r, cells := range p.grid {
		var sb strings.Builder
		for _, box := range cells {
			sb.WriteString(box.Value.String())
		}
		rows[r] = sb.String()
	}
	return rows
}

// Box returns the box at row, col
func (p *Puzzle) Box(row, col int) (Box, bool) {
	if row < 0 || row >= len(p.grid) || col < 0 || col >= len(p.grid[row]) {
		return Box{}, false
	}
	return p.grid[row][col], true
}

// Find returns the row and column of the box carrying number
func (p *Puzzle) Find(number uint8) (row, col int, ok bool) {
	if number == 0 {
		return 0, 0, false
	}
	for r, cells := range p.grid {
		for c, box := range cells {
			if box.Number == number {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Answer reads the letters starting at the box numbered number and running
// in direction d until a non-letter box or the grid edge.
func (p *Puzzle) Answer(d Direction, number uint8) (string, bool) {
	row, col, ok := p.Find(number)
	if !ok {
		return "", false
	}

	var letters []byte
	for {
		box, inside := p.Box(row, col)
		if !inside || box.Value.Kind != KindLetter {
			break
		}
		letters = append(letters, byte(box.Value.Letter))
		if d == Down {
			row++
		} else {
			col++
		}
	}

	return string(letters), len(letters) > 0
}

func cloneClues(clues []Clue) []Clue {
	if len(clues) == 0 {
		return nil
	}
	out := make([]Clue, len(clues))
	copy(out, clues)
	return out
}

func cloneGrid(grid [][]Box) [][]Box {
	if grid == nil {
		return nil
	}
	out := make([][]Box, len(grid))
	for i, row := range grid {
		out[i] = make([]Box, len(row))
		copy(out[i], row)
	}
	return out
}
