package crossword

import "testing"

// catGrid builds the 3x3 sample puzzle:
//
//	C A T
//	# # A
//	# # B
func catGrid(t testing.TB) [][]Box {
	t.Helper()

	mk := func(number uint8, v Value) Box {
		b, err := NewBox(number, v)
		if err != nil {
			t.Fatalf("NewBox(%d, %v): %v", number, v, err)
		}
		return b
	}

	return [][]Box{
		{mk(1, Letter('C')), mk(0, Letter('A')), mk(2, Letter('T'))},
		{mk(0, Solid()), mk(0, Solid()), mk(0, Letter('A'))},
		{mk(0, Solid()), mk(0, Solid()), mk(0, Letter('B'))},
	}
}

func catPuzzle(t testing.TB) *Puzzle {
	t.Helper()

	p, err := New(3, 3,
		[]Clue{{Number: 1, Text: "Good pet"}},
		[]Clue{{Number: 2, Text: "Starts a paragraph"}},
		catGrid(t),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}
