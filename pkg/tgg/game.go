package tgg

import (
	"fmt"

	"github.com/ssargent/tgg/pkg/codec"
	"github.com/ssargent/tgg/pkg/crossword"
)

// Game is the one-byte payload tag stored in the header
type Game uint8

const (
	GameCrossword  Game = 0x01
	GameWordLadder Game = 0x02
)

// Games lists every declared game tag
func Games() []Game {
	return []Game{GameCrossword, GameWordLadder}
}

// GameFromByte maps a header byte to its Game
func GameFromByte(b byte) (Game, error) {
	switch Game(b) {
	case GameCrossword, GameWordLadder:
		return Game(b), nil
	default:
		return 0, &codec.ByteError{Err: ErrInvalidGameType, Found: b}
	}
}

func (g Game) String() string {
	switch g {
	case GameCrossword:
		return "Crossword"
	case GameWordLadder:
		return "Word Ladder"
	default:
		return fmt.Sprintf("Game(0x%02X)", uint8(g))
	}
}

// GameData is the payload carried by a document. The set of
// implementations is closed to this package.
type GameData interface {
	Game() Game
	MarshalBinary() ([]byte, error)
	isGameData()
}

// Crossword is the crossword payload
type Crossword struct {
	Puzzle *crossword.Puzzle
}

func (Crossword) Game() Game { return GameCrossword }

// MarshalBinary validates the puzzle and encodes it
func (c Crossword) MarshalBinary() ([]byte, error) {
	if c.Puzzle == nil {
		return nil, ErrGameDataEmpty
	}
	if err := c.Puzzle.Validate(); err != nil {
		return nil, err
	}
	return crossword.Encode(c.Puzzle), nil
}

func (Crossword) isGameData() {}

// WordLadder is a declared payload without a codec yet
type WordLadder struct {
	StartingWord    string
	StartingWordDef string
	EndingWord      string
	EndingWordDef   string
	Steps           uint8
	StepHints       []string
}

func (WordLadder) Game() Game { return GameWordLadder }

// MarshalBinary always fails: the word ladder layout is not defined
func (WordLadder) MarshalBinary() ([]byte, error) {
	return nil, fmt.Errorf("%w: %s", ErrGameNotImplemented, GameWordLadder)
}

func (WordLadder) isGameData() {}

type payloadDecoder func(payload []byte) (GameData, error)

// decoderFor returns the payload decoder for g. Every tag in Games must
// have a case here.
func decoderFor(g Game) (payloadDecoder, bool) {
	switch g {
	case GameCrossword:
		return decodeCrossword, true
	case GameWordLadder:
		return decodeWordLadder, true
	default:
		return nil, false
	}
}

func decodeCrossword(payload []byte) (GameData, error) {
	p, err := crossword.Decode(payload)
	if err != nil {
		return nil, err
	}
	return Crossword{Puzzle: p}, nil
}

func decodeWordLadder([]byte) (GameData, error) {
	return nil, fmt.Errorf("%w: %s", ErrGameNotImplemented, GameWordLadder)
}
