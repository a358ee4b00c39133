package tgg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGames_EveryTagHasDecoder(t *testing.T) {
	for _, g := range Games() {
		decode, ok := decoderFor(g)
		require.True(t, ok, "game %s has no payload decoder", g)
		require.NotNil(t, decode)

		parsed, err := GameFromByte(byte(g))
		require.NoError(t, err)
		assert.Equal(t, g, parsed)
	}
}

func TestGameFromByte_Unknown(t *testing.T) {
	for _, b := range []byte{0x00, 0x03, 0xFF} {
		_, err := GameFromByte(b)
		assert.ErrorIs(t, err, ErrInvalidGameType)
	}

	_, ok := decoderFor(Game(0x03))
	assert.False(t, ok)
}

func TestGame_String(t *testing.T) {
	assert.Equal(t, "Crossword", GameCrossword.String())
	assert.Equal(t, "Word Ladder", GameWordLadder.String())
	assert.Equal(t, "Game(0x7F)", Game(0x7F).String())
}

func TestGameData_Tags(t *testing.T) {
	assert.Equal(t, GameCrossword, Crossword{}.Game())
	assert.Equal(t, GameWordLadder, WordLadder{}.Game())

	_, err := WordLadder{}.MarshalBinary()
	assert.ErrorIs(t, err, ErrGameNotImplemented)
}
