package crossword

import "errors"

// Decode errors
var (
	ErrUnexpectedEndOfData     = errors.New("unexpected end of crossword data")
	ErrWidthOrHeightZero       = errors.New("width or height is zero")
	ErrTotalCluesZero          = errors.New("total clues is zero")
	ErrClueCountMismatch       = errors.New("clue count mismatch")
	ErrNotEnoughCrosswordBytes = errors.New("wrong number of crossword grid bytes")
	ErrInvalidBoxByte          = errors.New("invalid crossword box byte")
	ErrInvalidBoxKind          = errors.New("invalid crossword box kind")
)

// Validation errors
var (
	ErrHeightMismatch              = errors.New("height of crossword did not match grid rows")
	ErrWidthMismatch               = errors.New("width of crossword did not match grid row length")
	ErrDuplicateNumber             = errors.New("duplicate grid number")
	ErrHorizontalClueInvalidNumber = errors.New("horizontal clue references unknown grid number")
	ErrHorizontalClueDuplicate     = errors.New("duplicate horizontal clue number")
	ErrVerticalClueInvalidNumber   = errors.New("vertical clue references unknown grid number")
	ErrVerticalClueDuplicate       = errors.New("duplicate vertical clue number")
	ErrEmptyClueText               = errors.New("clue text is empty")
	ErrInvalidClueText             = errors.New("clue text must be ASCII without NUL bytes")
	ErrTooManyClues                = errors.New("too many clues")
)

// Letter errors
var (
	ErrNonASCII      = errors.New("letter must be ASCII")
	ErrNonAlphabetic = errors.New("letter must be alphabetic")
	ErrNonUppercase  = errors.New("letter must be uppercase")
)
