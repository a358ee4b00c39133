package tgg

import (
	"encoding/binary"

	"github.com/ssargent/tgg/pkg/codec"
)

const (
	// Version is the format version written at the start of every file
	Version = "0.1.0"
	// ID is the magic identifier following the version
	ID = "TalonGamesGame"

	versionSize = len(Version)
	idSize      = len(ID)

	// HeaderSize is version + id + game tag + file checksum
	HeaderSize = versionSize + idSize + 1 + 2
	// FooterSize is the trailing copy of the file checksum
	FooterSize = 2
	// MinFileSize is the smallest buffer that can hold a header and footer
	MinFileSize = HeaderSize + FooterSize
)

// Header is the fixed-size start of a TGG file
// Byte layout:
//
//	0-4:   Version ("0.1.0")
//	5-18:  ID ("TalonGamesGame")
//	19:    Game tag
//	20-21: File checksum (little-endian)
type Header struct {
	Version      string
	ID           string
	Game         Game
	FileChecksum uint16
}

func newHeader(game Game, fileChecksum uint16) Header {
	return Header{
		Version:      Version,
		ID:           ID,
		Game:         game,
		FileChecksum: fileChecksum,
	}
}

func (h Header) appendTo(buf []byte) []byte {
	var version [versionSize]byte
	copy(version[:], h.Version)
	var id [idSize]byte
	copy(id[:], h.ID)

	buf = append(buf, version[:]...)
	buf = append(buf, id[:]...)
	buf = append(buf, byte(h.Game))
	return binary.LittleEndian.AppendUint16(buf, h.FileChecksum)
}

// parseHeader reads a header from the first HeaderSize bytes of data
func parseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, &codec.CountError{Err: ErrInsufficientHeaderBytes, Expected: HeaderSize, Found: len(data)}
	}

	version := codec.CString(data[0:versionSize])
	id := codec.CString(data[versionSize : versionSize+idSize])
	if id != ID {
		return Header{}, ErrInvalidID
	}

	game, err := GameFromByte(data[versionSize+idSize])
	if err != nil {
		return Header{}, err
	}

	return Header{
		Version:      version,
		ID:           id,
		Game:         game,
		FileChecksum: binary.LittleEndian.Uint16(data[HeaderSize-2 : HeaderSize]),
	}, nil
}

// Footer repeats the file checksum as the last two bytes of the file
type Footer struct {
	FileChecksum uint16
}

func (f Footer) appendTo(buf []byte) []byte {
	return binary.LittleEndian.AppendUint16(buf, f.FileChecksum)
}

func parseFooter(data []byte) Footer {
	return Footer{FileChecksum: binary.LittleEndian.Uint16(data[len(data)-FooterSize:])}
}
