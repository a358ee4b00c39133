// Package source reads crossword definitions written in YAML and turns
// them into TGG documents.
//
// A source lists the grid as one string per row. Letters stand for
// themselves, '#' is a solid box and '.' or ' ' is an empty box. Box
// numbers are assigned the usual way: reading row by row, every box that
// starts an across or down answer of two or more boxes gets the next number.
//
//	title: Test Crossword
//	description: Just doing some testing
//	grid:
//	  - CAT
//	  - "##A"
//	  - "##B"
//	across:
//	  - {number: 1, text: Good pet}
//	down:
//	  - {number: 2, text: Starts a paragraph}
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/tgg/pkg/codec"
	"github.com/ssargent/tgg/pkg/crossword"
	"github.com/ssargent/tgg/pkg/tgg"
)

var (
	ErrEmptySource     = errors.New("puzzle source is empty")
	ErrInvalidSource   = errors.New("invalid puzzle source")
	ErrRaggedGrid      = errors.New("grid rows must all have the same length")
	ErrInvalidGridCell = errors.New("invalid grid character")
	ErrTooManyNumbers  = errors.New("grid needs more than 255 box numbers")
)

var validate = validator.New()

// Source is a crossword definition as written by hand
type Source struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	// Author is optional; Build falls back to its default author
	Author string   `yaml:"author,omitempty"`
	Grid   []string `yaml:"grid" validate:"required,max=255,dive,required,max=255"`
	Across []Clue   `yaml:"across,omitempty" validate:"dive"`
	Down   []Clue   `yaml:"down,omitempty" validate:"dive"`
}

// Clue is one numbered clue in a source
type Clue struct {
	Number uint8  `yaml:"number" validate:"required"`
	Text   string `yaml:"text" validate:"required"`
}

// Load reads and parses the source file at path
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle source: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML source. Unknown keys are rejected.
func Parse(data []byte) (*Source, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Source
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySource
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidSource, err)
	}

	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSource, err)
	}

	return &s, nil
}

// Build converts s into a crossword document. defaultAuthor is used when
// the source names no author.
func (s *Source) Build(defaultAuthor string, opts ...tgg.BuildOption) (*tgg.Document, error) {
	values, err := s.values()
	if err != nil {
		return nil, err
	}

	numbers, err := Number(values)
	if err != nil {
		return nil, err
	}

	grid := make([][]crossword.Box, len(values))
	for r, row := range values {
		grid[r] = make([]crossword.Box, len(row))
		for c, v := range row {
			grid[r][c] = crossword.Box{Number: numbers[r][c], Value: v}
		}
	}

	author := s.Author
	if author == "" {
		author = defaultAuthor
	}

	return tgg.BuildCrosswordDocument(
		s.Title, s.Description, author,
		uint8(len(values[0])), uint8(len(values)),
		toClues(s.Across), toClues(s.Down),
		grid,
		opts...,
	)
}

func (s *Source) values() ([][]crossword.Value, error) {
	if len(s.Grid) == 0 {
		return nil, fmt.Errorf("%w: grid is empty", ErrInvalidSource)
	}

	width := len([]rune(s.Grid[0]))
	values := make([][]crossword.Value, len(s.Grid))
	for r, line := range s.Grid {
		cells := []rune(line)
		if len(cells) != width {
			return nil, &codec.CountError{Err: ErrRaggedGrid, Expected: width, Found: len(cells)}
		}

		values[r] = make([]crossword.Value, width)
		for c, ch := range cells {
			switch ch {
			case '#':
				values[r][c] = crossword.Solid()
			case '.', ' ':
				values[r][c] = crossword.Empty()
			default:
				if ch < 'A' || (ch > 'Z' && ch < 'a') || ch > 'z' {
					return nil, fmt.Errorf("%w %q at row %d, column %d", ErrInvalidGridCell, ch, r+1, c+1)
				}
				values[r][c] = crossword.Letter(ch)
			}
		}
	}
	return values, nil
}

// Number assigns box numbers to a grid. A non-solid box is numbered when
// it begins a run of two or more non-solid boxes across or down.
func Number(grid [][]crossword.Value) ([][]uint8, error) {
	open := func(r, c int) bool {
		return r >= 0 && r < len(grid) && c >= 0 && c < len(grid[r]) && grid[r][c].Kind != crossword.KindSolid
	}

	numbers := make([][]uint8, len(grid))
	next := 1
	for r := range grid {
		numbers[r] = make([]uint8, len(grid[r]))
		for c := range grid[r] {
			if !open(r, c) {
				continue
			}
			across := !open(r, c-1) && open(r, c+1)
			down := !open(r-1, c) && open(r+1, c)
			if !across && !down {
				continue
			}
			if next > math.MaxUint8 {
				return nil, ErrTooManyNumbers
			}
			numbers[r][c] = uint8(next)
			next++
		}
	}
	return numbers, nil
}

func toClues(in []Clue) []crossword.Clue {
	if len(in) == 0 {
		return nil
	}
	out := make([]crossword.Clue, len(in))
	for i, c := range in {
		out[i] = crossword.Clue{Number: c.Number, Text: c.Text}
	}
	return out
}
