package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/tgg/pkg/crossword"
	"github.com/ssargent/tgg/pkg/storage"
	"github.com/ssargent/tgg/pkg/tgg"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func checkFormat(format string) error {
	if format != formatTable && format != formatJSON {
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, formatTable, formatJSON)
	}
	return nil
}

// documentView is the JSON shape of an inspected document
type documentView struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Author      string        `json:"author"`
	Game        string        `json:"game"`
	Created     string        `json:"created"`
	Size        int           `json:"size"`
	Checksum    string        `json:"checksum"`
	Crossword   *crosswordView `json:"crossword,omitempty"`
}

type crosswordView struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Rows   []string    `json:"rows"`
	Across []clueEntry `json:"across,omitempty"`
	Down   []clueEntry `json:"down,omitempty"`
}

type clueEntry struct {
	Number uint8  `json:"number"`
	Text   string `json:"text"`
	Answer string `json:"answer,omitempty"`
}

func viewDocument(doc *tgg.Document) documentView {
	v := documentView{
		Title:       doc.Title(),
		Description: doc.Description(),
		Author:      doc.Author(),
		Game:        doc.Game().String(),
		Created:     doc.Metadata().FormattedDate(),
		Size:        doc.Size(),
		Checksum:    fmt.Sprintf("0x%04X", doc.Header().FileChecksum),
	}

	if p, ok := doc.Crossword(); ok {
		v.Crossword = &crosswordView{
			Width:  int(p.Width()),
			Height: int(p.Height()),
			Rows:   p.Rows(),
			Across: clueEntries(p, crossword.Across, p.Horizontal()),
			Down:   clueEntries(p, crossword.Down, p.Vertical()),
		}
	}
	return v
}

func clueEntries(p *crossword.Puzzle, d crossword.Direction, clues []crossword.Clue) []clueEntry {
	var out []clueEntry
	for _, c := range clues {
		answer, _ := p.Answer(d, c.Number)
		out = append(out, clueEntry{Number: c.Number, Text: c.Text, Answer: answer})
	}
	return out
}

// outputDocument displays a single document
func outputDocument(w io.Writer, doc *tgg.Document, format string) error {
	v := viewDocument(doc)
	if format == formatJSON {
		return outputJSON(w, v)
	}
	return outputDocumentTable(w, v)
}

func outputDocumentTable(out io.Writer, v documentView) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Title:\t%s\n", v.Title)
	fmt.Fprintf(w, "Description:\t%s\n", v.Description)
	fmt.Fprintf(w, "Author:\t%s\n", v.Author)
	fmt.Fprintf(w, "Game:\t%s\n", v.Game)
	fmt.Fprintf(w, "Created:\t%s\n", v.Created)
	fmt.Fprintf(w, "Size:\t%d bytes\n", v.Size)
	fmt.Fprintf(w, "Checksum:\t%s\n", v.Checksum)
	if err := w.Flush(); err != nil {
		return err
	}

	if v.Crossword == nil {
		return nil
	}

	fmt.Fprintf(out, "\nGrid (%dx%d):\n", v.Crossword.Width, v.Crossword.Height)
	for _, row := range v.Crossword.Rows {
		fmt.Fprintf(out, "  |%s|\n", row)
	}

	outputClues(out, "Across", v.Crossword.Across)
	outputClues(out, "Down", v.Crossword.Down)
	return nil
}

func outputClues(out io.Writer, heading string, clues []clueEntry) {
	if len(clues) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s:\n", heading)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, c := range clues {
		fmt.Fprintf(w, "  %d.\t%s\t%s\n", c.Number, c.Text, c.Answer)
	}
	_ = w.Flush()
}

// outputSummaries displays library entries
func outputSummaries(out io.Writer, summaries []storage.Summary, format string) error {
	if format == formatJSON {
		if summaries == nil {
			summaries = []storage.Summary{}
		}
		return outputJSON(out, summaries)
	}

	if len(summaries) == 0 {
		fmt.Fprintln(out, "Library is empty")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tGAME\tCREATED\tSIZE")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			s.ID, s.Title, s.Author, s.Game, s.CreatedAt.Format(time.DateOnly), s.Size)
	}
	return w.Flush()
}

func outputJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func outputYAML(out io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
