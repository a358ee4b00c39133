package tgg

import "github.com/ssargent/tgg/pkg/crossword"

// DemoCrossword builds the three by three CAT/TAB sample puzzle. An empty
// author falls back to "Anonymous".
func DemoCrossword(author string, opts ...BuildOption) (*Document, error) {
	if author == "" {
		author = "Anonymous"
	}

	L := crossword.Letter
	S := crossword.Solid
	grid := [][]crossword.Box{
		{{Number: 1, Value: L('C')}, {Value: L('A')}, {Number: 2, Value: L('T')}},
		{{Value: S()}, {Value: S()}, {Value: L('A')}},
		{{Value: S()}, {Value: S()}, {Value: L('B')}},
	}

	return BuildCrosswordDocument(
		"Test Crossword", "Just doing some testing", author,
		3, 3,
		[]crossword.Clue{{Number: 1, Text: "Good pet"}},
		[]crossword.Clue{{Number: 2, Text: "Starts a paragraph"}},
		grid,
		opts...,
	)
}
