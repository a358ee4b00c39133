package api

import (
	"github.com/segmentio/ksuid"

	"github.com/ssargent/tgg/pkg/storage"
	"github.com/ssargent/tgg/pkg/tgg"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Kind    string      `json:"kind,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port           int
	Bind           string
	APIKey         string
	MaxUploadBytes int64
}

// PuzzleLibrary is the storage the server needs. *storage.Library satisfies it.
type PuzzleLibrary interface {
	PutRaw(data []byte) (ksuid.KSUID, *tgg.Document, error)
	Get(id ksuid.KSUID) (*tgg.Document, error)
	GetRaw(id ksuid.KSUID) ([]byte, error)
	List() ([]storage.Summary, error)
	Delete(id ksuid.KSUID) error
	Count() (int, error)
}

// ValidationResult is returned by the validate endpoint
type ValidationResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Author      string `json:"author"`
	Game        string `json:"game"`
	Created     string `json:"created"`
	Size        int    `json:"size"`
}

// PuzzleView is the JSON rendering of a stored puzzle
type PuzzleView struct {
	storage.Summary
	Created   string         `json:"created"`
	Crossword *CrosswordView `json:"crossword,omitempty"`
}

// CrosswordView renders a crossword grid one string per row, using '#'
// for solid boxes and ' ' for empty ones.
type CrosswordView struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Across []ClueView `json:"across,omitempty"`
	Down   []ClueView `json:"down,omitempty"`
	Rows   []string   `json:"rows"`
}

// ClueView is one clue with the answer read from the grid
type ClueView struct {
	Number uint8  `json:"number"`
	Text   string `json:"text"`
	Answer string `json:"answer,omitempty"`
}
