package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/tgg/pkg/tgg"
)

var (
	// ErrNotFound indicates no puzzle is stored under the requested id
	ErrNotFound = errors.New("puzzle not found")
	// ErrWriteFailed wraps database failures while storing a puzzle
	ErrWriteFailed = errors.New("failed to store puzzle")
)

// keyPrefix namespaces puzzle records inside the pebble keyspace
var keyPrefix = []byte("puzzle/")

// Summary describes a stored puzzle without its payload
type Summary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	Game        string    `json:"game"`
	CreatedAt   time.Time `json:"created_at"`
	Size        int       `json:"size"`
}

// Summarize builds the summary of doc stored as id
func Summarize(id ksuid.KSUID, doc *tgg.Document) Summary {
	return Summary{
		ID:          id.String(),
		Title:       doc.Title(),
		Description: doc.Description(),
		Author:      doc.Author(),
		Game:        doc.Game().String(),
		CreatedAt:   doc.CreatedAt(),
		Size:        doc.Size(),
	}
}

// Library stores encoded TGG documents in pebble, keyed by KSUID.
// Every stored value is a complete .tgg file.
type Library struct {
	db *pebble.DB
}

// Open opens or creates a library at path
func Open(path string) (*Library, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}
	return &Library{db: db}, nil
}

// Put encodes doc and stores it under a new id
func (l *Library) Put(doc *tgg.Document) (ksuid.KSUID, error) {
	return l.store(tgg.Encode(doc))
}

// PutRaw stores data under a new id if it decodes as a valid TGG file.
// The stored value is data itself, not a re-encoding of the document.
// Decode errors are returned as is; database failures wrap ErrWriteFailed.
func (l *Library) PutRaw(data []byte) (ksuid.KSUID, *tgg.Document, error) {
	doc, err := tgg.Decode(data)
	if err != nil {
		return ksuid.Nil, nil, err
	}
	id, err := l.store(data)
	if err != nil {
		return ksuid.Nil, nil, err
	}
	return id, doc, nil
}

func (l *Library) store(data []byte) (ksuid.KSUID, error) {
	id := ksuid.New()
	if err := l.db.Set(recordKey(id), data, pebble.Sync); err != nil {
		return ksuid.Nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return id, nil
}

// GetRaw returns the stored bytes for id
func (l *Library) GetRaw(id ksuid.KSUID) ([]byte, error) {
	data, closer, err := l.db.Get(recordKey(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Get returns the decoded document for id
func (l *Library) Get(id ksuid.KSUID) (*tgg.Document, error) {
	data, err := l.GetRaw(id)
	if err != nil {
		return nil, err
	}
	doc, err := tgg.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("stored puzzle %s is corrupt: %w", id, err)
	}
	return doc, nil
}

// Count returns the number of stored puzzles without decoding them
func (l *Library) Count() (int, error) {
	iter, err := l.newIter()
	if err != nil {
		return 0, err
	}
	defer iter.Close()

	n := 0
	for iter.First(); iter.Valid(); iter.Next() {
		n++
	}
	return n, iter.Error()
}

// List returns summaries of every stored puzzle in id order. KSUIDs sort
// by creation second, so the listing is oldest first.
func (l *Library) List() ([]Summary, error) {
	iter, err := l.newIter()
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var summaries []Summary
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key()[len(keyPrefix):])
		if err != nil {
			return nil, fmt.Errorf("invalid library key %x: %w", iter.Key(), err)
		}
		doc, err := tgg.Decode(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("stored puzzle %s is corrupt: %w", id, err)
		}
		summaries = append(summaries, Summarize(id, doc))
	}

	return summaries, iter.Error()
}

// Delete removes the puzzle stored as id
func (l *Library) Delete(id ksuid.KSUID) error {
	key := recordKey(id)
	_, closer, err := l.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return err
	}
	closer.Close()

	return l.db.Delete(key, pebble.Sync)
}

// Close closes the underlying database
func (l *Library) Close() error {
	return l.db.Close()
}

func (l *Library) newIter() (*pebble.Iterator, error) {
	return l.db.NewIter(&pebble.IterOptions{
		LowerBound: keyPrefix,
		UpperBound: prefixUpperBound(keyPrefix),
	})
}

func recordKey(id ksuid.KSUID) []byte {
	key := make([]byte, 0, len(keyPrefix)+len(id))
	key = append(key, keyPrefix...)
	return append(key, id.Bytes()...)
}

// prefixUpperBound returns the smallest key greater than every key with prefix
func prefixUpperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
