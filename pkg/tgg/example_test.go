package tgg_test

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ssargent/tgg/pkg/crossword"
	"github.com/ssargent/tgg/pkg/tgg"
)

// ExampleBuildCrosswordDocument builds, encodes and decodes the CAT puzzle
func ExampleBuildCrosswordDocument() {
	L, S := crossword.Letter, crossword.Solid
	grid := [][]crossword.Box{
		{{Number: 1, Value: L('C')}, {Value: L('A')}, {Number: 2, Value: L('T')}},
		{{Value: S()}, {Value: S()}, {Value: L('A')}},
		{{Value: S()}, {Value: S()}, {Value: L('B')}},
	}

	clock := func() time.Time { return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC) }

	doc, err := tgg.BuildCrosswordDocument(
		"Test Crossword", "Just doing some testing", "Test Author",
		3, 3,
		[]crossword.Clue{{Number: 1, Text: "Good pet"}},
		[]crossword.Clue{{Number: 2, Text: "Starts a paragraph"}},
		grid,
		tgg.WithClock(clock),
	)
	if err != nil {
		log.Fatal(err)
	}

	data := tgg.Encode(doc)

	decoded, err := tgg.Decode(data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s by %s\n", decoded.Title(), decoded.Author())
	fmt.Printf("Game: %s\n", decoded.Game())
	fmt.Printf("Created: %s\n", decoded.Metadata().FormattedDate())

	// Output:
	// Test Crossword by Test Author
	// Game: Crossword
	// Created: June, 01, 2024
}

// ExampleDecode_corruption shows a checksum failure on a damaged file
func ExampleDecode_corruption() {
	_, err := tgg.Decode([]byte("0.1.0TalonGamesGame\x01\x00\x00t\x00d\x00a\x00\x00\x00\x00\x00\x00\x00\x00\x00"))

	switch {
	case errors.Is(err, tgg.ErrHeaderChecksumMismatch):
		fmt.Println("corrupted")
	case err != nil:
		fmt.Println("other error:", err)
	}

	// Output:
	// corrupted
}
