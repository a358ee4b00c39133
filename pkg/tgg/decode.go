package tgg

import (
	"github.com/ssargent/tgg/pkg/codec"
)

// Decode parses a complete TGG file. Stages run in order and the first
// failure is returned; no partial document is produced.
//
//  1. header: size, id, game tag, file checksum
//  2. integrity: the body checksum must match the header and footer copies
//  3. metadata: title, description, author, creation date, payload checksum
//  4. payload: non-empty, matching its checksum, decoded by game tag
func Decode(data []byte) (*Document, error) {
	if len(data) < MinFileSize {
		return nil, &codec.CountError{Err: ErrInsufficientHeaderBytes, Expected: MinFileSize, Found: len(data)}
	}

	header, err := parseHeader(data[:HeaderSize])
	if err != nil {
		return nil, err
	}

	body := data[HeaderSize : len(data)-FooterSize]
	footer := parseFooter(data)

	sum := codec.Checksum(body)
	if sum != header.FileChecksum {
		return nil, &codec.CountError{Err: ErrHeaderChecksumMismatch, Expected: int(header.FileChecksum), Found: int(sum)}
	}
	if sum != footer.FileChecksum {
		return nil, &codec.CountError{Err: ErrFooterChecksumMismatch, Expected: int(footer.FileChecksum), Found: int(sum)}
	}

	metadata, offset, err := parseMetadata(body)
	if err != nil {
		return nil, err
	}

	payload := body[offset:]
	if len(payload) == 0 {
		return nil, ErrGameDataEmpty
	}
	if ps := codec.Checksum(payload); ps != metadata.PayloadChecksum {
		return nil, &codec.CountError{Err: ErrPayloadChecksumMismatch, Expected: int(metadata.PayloadChecksum), Found: int(ps)}
	}

	decode, ok := decoderFor(header.Game)
	if !ok {
		return nil, &codec.ByteError{Err: ErrInvalidGameType, Found: byte(header.Game)}
	}
	gameData, err := decode(payload)
	if err != nil {
		return nil, err
	}

	owned := make([]byte, len(payload))
	copy(owned, payload)

	return &Document{
		header:   header,
		metadata: metadata,
		data:     gameData,
		payload:  owned,
		footer:   footer,
	}, nil
}
