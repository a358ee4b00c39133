package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/tgg/pkg/crossword"
	"github.com/ssargent/tgg/pkg/storage"
	"github.com/ssargent/tgg/pkg/tgg"
)

// Server holds the API server state
type Server struct {
	library PuzzleLibrary
	config  ServerConfig
	metrics *Metrics
	logger  *slog.Logger
}

// NewServer creates a new API server
func NewServer(library PuzzleLibrary, config ServerConfig, metrics *Metrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		library: library,
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"}, http.StatusOK)
}

// handleCreate stores an uploaded .tgg file after decoding it
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	// The uploaded bytes are stored as is once they decode
	id, doc, err := s.library.PutRaw(body)
	if err != nil {
		if errors.Is(err, storage.ErrWriteFailed) {
			s.logger.Error("failed to store puzzle", "error", err)
			sendError(w, "Failed to store puzzle", http.StatusInternalServerError)
			return
		}
		kind := s.metrics.RecordDecode(err)
		s.logger.Info("rejected upload", "kind", kind, "error", err)
		sendErrorKind(w, err.Error(), kind, http.StatusUnprocessableEntity)
		return
	}
	s.metrics.RecordDecode(nil)
	s.refreshLibrarySize()

	s.logger.Info("stored puzzle", "id", id.String(), "title", doc.Title())
	sendSuccess(w, storage.Summarize(id, doc), http.StatusCreated)
}

// handleValidate decodes an uploaded file without storing it
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	doc, err := tgg.Decode(body)
	kind := s.metrics.RecordDecode(err)
	if err != nil {
		sendErrorKind(w, err.Error(), kind, http.StatusUnprocessableEntity)
		return
	}

	sendSuccess(w, ValidationResult{
		Title:       doc.Title(),
		Description: doc.Description(),
		Author:      doc.Author(),
		Game:        doc.Game().String(),
		Created:     doc.Metadata().FormattedDate(),
		Size:        doc.Size(),
	}, http.StatusOK)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.library.List()
	if err != nil {
		s.logger.Error("failed to list puzzles", "error", err)
		sendError(w, "Failed to list puzzles", http.StatusInternalServerError)
		return
	}
	if summaries == nil {
		summaries = []storage.Summary{}
	}
	s.metrics.SetLibrarySize(len(summaries))
	sendSuccess(w, summaries, http.StatusOK)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	doc, err := s.library.Get(id)
	if err != nil {
		s.sendLibraryError(w, err)
		return
	}

	sendSuccess(w, renderPuzzle(id, doc), http.StatusOK)
}

func (s *Server) handleGetRaw(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	data, err := s.library.GetRaw(id)
	if err != nil {
		s.sendLibraryError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+id.String()+tgg.Extension+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := s.library.Delete(id); err != nil {
		s.sendLibraryError(w, err)
		return
	}
	s.refreshLibrarySize()

	s.logger.Info("deleted puzzle", "id", id.String())
	sendSuccess(w, map[string]string{"id": id.String(), "status": "deleted"}, http.StatusOK)
}

// readUpload reads the request body up to the configured limit
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if s.config.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxUploadBytes)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendError(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return nil, false
		}
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return nil, false
	}
	if len(body) == 0 {
		sendError(w, "Request body is empty", http.StatusBadRequest)
		return nil, false
	}
	return body, true
}

func (s *Server) sendLibraryError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, err.Error(), http.StatusNotFound)
		return
	}
	s.logger.Error("library operation failed", "error", err)
	sendError(w, "Internal server error", http.StatusInternalServerError)
}

func (s *Server) refreshLibrarySize() {
	n, err := s.library.Count()
	if err != nil {
		s.logger.Warn("failed to count puzzles", "error", err)
		return
	}
	s.metrics.SetLibrarySize(n)
}

func parseID(w http.ResponseWriter, r *http.Request) (ksuid.KSUID, bool) {
	id, err := ksuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, "Invalid puzzle id", http.StatusBadRequest)
		return ksuid.Nil, false
	}
	return id, true
}

func renderPuzzle(id ksuid.KSUID, doc *tgg.Document) PuzzleView {
	view := PuzzleView{
		Summary: storage.Summarize(id, doc),
		Created: doc.Metadata().FormattedDate(),
	}

	if p, ok := doc.Crossword(); ok {
		view.Crossword = renderCrossword(p)
	}
	return view
}

func renderCrossword(p *crossword.Puzzle) *CrosswordView {
	return &CrosswordView{
		Width:  int(p.Width()),
		Height: int(p.Height()),
		Across: renderClues(p, crossword.Across, p.Horizontal()),
		Down:   renderClues(p, crossword.Down, p.Vertical()),
		Rows:   p.Rows(),
	}
}

func renderClues(p *crossword.Puzzle, d crossword.Direction, clues []crossword.Clue) []ClueView {
	var views []ClueView
	for _, c := range clues {
		answer, _ := p.Answer(d, c.Number)
		views = append(views, ClueView{Number: c.Number, Text: c.Text, Answer: answer})
	}
	return views
}
