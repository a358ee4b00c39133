package tgg

import (
	"fmt"
	"math"
	"time"

	"github.com/ssargent/tgg/pkg/codec"
	"github.com/ssargent/tgg/pkg/crossword"
)

// Document is a complete TGG file held in memory. It is immutable once built.
type Document struct {
	header   Header
	metadata Metadata
	data     GameData
	payload  []byte
	footer   Footer
}

type buildOptions struct {
	now func() time.Time
}

// BuildOption customizes document construction
type BuildOption func(*buildOptions)

// WithClock sets the clock used to stamp the creation date
func WithClock(now func() time.Time) BuildOption {
	return func(o *buildOptions) {
		o.now = now
	}
}

// BuildCrosswordDocument validates a crossword and wraps it in a new document
func BuildCrosswordDocument(
	title, description, author string,
	width, height uint8,
	horizontal, vertical []crossword.Clue,
	grid [][]crossword.Box,
	opts ...BuildOption,
) (*Document, error) {
	puzzle, err := crossword.New(width, height, horizontal, vertical, grid)
	if err != nil {
		return nil, err
	}
	return BuildDocument(title, description, author, Crossword{Puzzle: puzzle}, opts...)
}

// BuildDocument wraps game data in a new document, stamping the creation
// date and computing both checksums.
func BuildDocument(title, description, author string, data GameData, opts ...BuildOption) (*Document, error) {
	o := buildOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	metadata := Metadata{
		Title:       title,
		Description: description,
		Author:      author,
	}
	if err := metadata.validateText(); err != nil {
		return nil, err
	}

	created := o.now().Unix()
	if created < 0 || created > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d", ErrTimestampOutOfRange, created)
	}
	metadata.Created = uint32(created)

	payload, err := data.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, ErrGameDataEmpty
	}
	metadata.PayloadChecksum = codec.Checksum(payload)

	// The file checksum covers everything between header and footer
	body := metadata.appendTo(make([]byte, 0, metadata.size()+len(payload)))
	body = append(body, payload...)
	fileChecksum := codec.Checksum(body)

	return &Document{
		header:   newHeader(data.Game(), fileChecksum),
		metadata: metadata,
		data:     data,
		payload:  payload,
		footer:   Footer{FileChecksum: fileChecksum},
	}, nil
}

// Encode serializes d in header, metadata, payload, footer order
func Encode(d *Document) []byte {
	buf := make([]byte, 0, d.Size())
	buf = d.header.appendTo(buf)
	buf = d.metadata.appendTo(buf)
	buf = append(buf, d.payload...)
	return d.footer.appendTo(buf)
}

// MarshalBinary implements encoding.BinaryMarshaler
func (d *Document) MarshalBinary() ([]byte, error) {
	return Encode(d), nil
}

// Size returns the encoded length of d in bytes
func (d *Document) Size() int {
	return HeaderSize + d.metadata.size() + len(d.payload) + FooterSize
}

func (d *Document) Header() Header     { return d.header }
func (d *Document) Metadata() Metadata { return d.metadata }
func (d *Document) Footer() Footer     { return d.footer }
func (d *Document) GameData() GameData { return d.data }
func (d *Document) Game() Game         { return d.header.Game }

func (d *Document) Title() string       { return d.metadata.Title }
func (d *Document) Description() string { return d.metadata.Description }
func (d *Document) Author() string      { return d.metadata.Author }

// CreatedAt returns the creation time in UTC
func (d *Document) CreatedAt() time.Time { return d.metadata.CreatedAt() }

// Crossword returns the crossword payload, if d carries one
func (d *Document) Crossword() (*crossword.Puzzle, bool) {
	c, ok := d.data.(Crossword)
	if !ok {
		return nil, false
	}
	return c.Puzzle, true
}
