package tgg

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ssargent/tgg/pkg/codec"
)

// metadataTrailerSize is the creation date (4) plus the payload checksum (2)
const metadataTrailerSize = 6

// Metadata describes the puzzle and protects the payload with its own checksum
type Metadata struct {
	Title           string
	Description     string
	Author          string
	Created         uint32 // unix seconds, stored big-endian
	PayloadChecksum uint16 // stored little-endian
}

// CreatedAt returns the creation time in UTC
func (m Metadata) CreatedAt() time.Time {
	return time.Unix(int64(m.Created), 0).UTC()
}

// FormattedDate returns the creation date for display
func (m Metadata) FormattedDate() string {
	return FormatTimestamp(m.Created)
}

func (m Metadata) size() int {
	return len(m.Title) + len(m.Description) + len(m.Author) + 3 + metadataTrailerSize
}

func (m Metadata) appendTo(buf []byte) []byte {
	buf = codec.AppendCString(buf, m.Title)
	buf = codec.AppendCString(buf, m.Description)
	buf = codec.AppendCString(buf, m.Author)
	buf = binary.BigEndian.AppendUint32(buf, m.Created)
	return binary.LittleEndian.AppendUint16(buf, m.PayloadChecksum)
}

// validateText checks the caller-supplied text fields before they are encoded
func (m Metadata) validateText() error {
	fields := []struct {
		name  string
		value string
		empty error
	}{
		{"title", m.Title, ErrTitleEmpty},
		{"description", m.Description, ErrDescriptionEmpty},
		{"author", m.Author, ErrAuthorEmpty},
	}

	for _, f := range fields {
		if f.value == "" {
			return f.empty
		}
		if !codec.IsCStringSafe(f.value) {
			return fmt.Errorf("%s: %w", f.name, ErrInvalidMetadataText)
		}
	}
	return nil
}

// parseMetadata reads metadata from the start of body and returns it with
// the offset where the payload begins.
func parseMetadata(body []byte) (Metadata, int, error) {
	var m Metadata
	offset := 0

	fields := []struct {
		name  string
		dst   *string
		empty error
	}{
		{"title", &m.Title, ErrTitleEmpty},
		{"description", &m.Description, ErrDescriptionEmpty},
		{"author", &m.Author, ErrAuthorEmpty},
	}

	for _, f := range fields {
		value, next, err := codec.CStringAt(body, offset)
		if err != nil {
			return Metadata{}, 0, fmt.Errorf("%w: %s: %w", ErrInsufficientMetadataBytes, f.name, err)
		}
		if value == "" {
			return Metadata{}, 0, f.empty
		}
		// Bytes above 0x7F would widen to runes and re-encode longer
		if !codec.IsCStringSafe(value) {
			return Metadata{}, 0, fmt.Errorf("%s: %w", f.name, ErrInvalidMetadataText)
		}
		*f.dst = value
		offset = next
	}

	if remaining := len(body) - offset; remaining < metadataTrailerSize {
		return Metadata{}, 0, &codec.CountError{Err: ErrInsufficientMetadataBytes, Expected: metadataTrailerSize, Found: remaining}
	}

	m.Created = binary.BigEndian.Uint32(body[offset : offset+4])
	m.PayloadChecksum = binary.LittleEndian.Uint16(body[offset+4 : offset+metadataTrailerSize])

	return m, offset + metadataTrailerSize, nil
}
