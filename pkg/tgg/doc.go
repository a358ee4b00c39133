// Package tgg reads and writes TGG files, a small self-describing
// container for puzzle-game data.
//
// # File Format
//
// All multi-byte integers are little-endian except the creation date:
//
//	[version "0.1.0"(5)][id "TalonGamesGame"(14)][game(1)][file checksum(2)]
//	[title\0][description\0][author\0][created(4, big-endian)][payload checksum(2)]
//	[payload]
//	[file checksum(2)]
//
// The file checksum is the 16-bit additive checksum (see package codec) of
// everything between header and footer: metadata and payload. It is stored
// twice, in the header and in the footer. The payload checksum covers the
// payload alone.
//
// # Games
//
// The game byte selects the payload codec. GameCrossword (0x01) carries a
// crossword.Puzzle. GameWordLadder (0x02) is declared but has no layout
// yet; decoding such a file fails with ErrGameNotImplemented.
//
// # Usage
//
//	doc, err := tgg.BuildCrosswordDocument("Title", "Description", "Author",
//	    3, 3, across, down, grid)
//	if err != nil {
//	    return err
//	}
//	data := tgg.Encode(doc)
//
//	doc, err = tgg.Decode(data)
//	if errors.Is(err, tgg.ErrHeaderChecksumMismatch) {
//	    // corrupted
//	}
//
// LoadFile and SaveFile add the file rules: a .tgg extension, no silent
// overwrite, and parent directory creation.
//
// # Thread Safety
//
// Documents are immutable and safe to share. Decode and Encode hold no
// shared state.
package tgg
