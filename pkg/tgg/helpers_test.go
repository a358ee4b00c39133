package tgg

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/ssargent/tgg/pkg/codec"
	"github.com/ssargent/tgg/pkg/crossword"
)

var fixedTime = time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func catGrid() [][]crossword.Box {
	L := crossword.Letter
	S := crossword.Solid
	return [][]crossword.Box{
		{{Number: 1, Value: L('C')}, {Value: L('A')}, {Number: 2, Value: L('T')}},
		{{Value: S()}, {Value: S()}, {Value: L('A')}},
		{{Value: S()}, {Value: S()}, {Value: L('B')}},
	}
}

func catDocument(t testing.TB) *Document {
	t.Helper()

	doc, err := BuildCrosswordDocument(
		"Test Crossword", "Just doing some testing", "Test Author",
		3, 3,
		[]crossword.Clue{{Number: 1, Text: "Good pet"}},
		[]crossword.Clue{{Number: 2, Text: "Starts a paragraph"}},
		catGrid(),
		WithClock(fixedClock),
	)
	if err != nil {
		t.Fatalf("BuildCrosswordDocument: %v", err)
	}
	return doc
}

// wrap builds a file around body with valid header and footer checksums
func wrap(game byte, body []byte) []byte {
	sum := codec.Checksum(body)

	out := []byte(Version + ID)
	out = append(out, game)
	out = binary.LittleEndian.AppendUint16(out, sum)
	out = append(out, body...)
	return binary.LittleEndian.AppendUint16(out, sum)
}

// assemble builds a file with consistent checksums from raw field values,
// including values BuildDocument would refuse.
func assemble(game byte, title, description, author string, created uint32, payload []byte) []byte {
	var body []byte
	body = codec.AppendCString(body, title)
	body = codec.AppendCString(body, description)
	body = codec.AppendCString(body, author)
	body = binary.BigEndian.AppendUint32(body, created)
	body = binary.LittleEndian.AppendUint16(body, codec.Checksum(payload))
	body = append(body, payload...)
	return wrap(game, body)
}
