package tgg

import "errors"

// Header and envelope errors
var (
	ErrInsufficientHeaderBytes = errors.New("insufficient header bytes")
	ErrInvalidID               = errors.New("invalid file id")
	ErrInvalidGameType         = errors.New("invalid game type byte")
	ErrHeaderChecksumMismatch  = errors.New("header checksum mismatch, file may be corrupted")
	ErrFooterChecksumMismatch  = errors.New("footer checksum mismatch, file may be corrupted")
)

// Metadata errors
var (
	ErrTitleEmpty                = errors.New("title is empty")
	ErrDescriptionEmpty          = errors.New("description is empty")
	ErrAuthorEmpty               = errors.New("author is empty")
	ErrInsufficientMetadataBytes = errors.New("insufficient metadata bytes")
	ErrInvalidMetadataText       = errors.New("metadata text must be ASCII without NUL bytes")
	ErrTimestampOutOfRange       = errors.New("creation time does not fit in 32-bit unix seconds")
)

// Payload errors
var (
	ErrGameDataEmpty           = errors.New("game data is empty")
	ErrPayloadChecksumMismatch = errors.New("game data checksum mismatch")
	ErrGameNotImplemented      = errors.New("game type is not implemented")
)

// File errors
var (
	ErrInvalidExtension = errors.New("file must have a .tgg extension")
	ErrFileNotFound     = errors.New("file does not exist")
	ErrFileExists       = errors.New("file already exists")
)
