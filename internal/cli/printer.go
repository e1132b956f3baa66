// Package cli renders catalog data for the terminal.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/lcsolved/internal/catalog"
	"github.com/at-ishikawa/lcsolved/internal/flashcard"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

const maxTitleWidth = 48

type Printer struct {
	w     io.Writer
	bold  *color.Color
	green *color.Color
	faint *color.Color
}

func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		w:     w,
		bold:  color.New(color.Bold),
		green: color.New(color.FgGreen),
		faint: color.New(color.Faint),
	}
}

// Questions writes questions in the given format. An empty format means table.
func (p *Printer) Questions(questions []catalog.Question, format string) error {
	if questions == nil {
		questions = []catalog.Question{}
	}
	switch format {
	case FormatTable, "":
		return p.questionTable(questions)
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(questions)
	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(questions); err != nil {
			return fmt.Errorf("encode questions: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func (p *Printer) questionTable(questions []catalog.Question) error {
	if len(questions) == 0 {
		_, err := fmt.Fprintln(p.w, "No questions found.")
		return err
	}

	if _, err := p.bold.Fprintf(p.w, "%-6s  %-7s  %-6s  %-*s  %s\n", "ID", "Rating", "Solved", maxTitleWidth, "Title", "Contest"); err != nil {
		return err
	}
	for _, q := range questions {
		line := fmt.Sprintf("%-6d  %-7.0f  %-6s  %-*s  %s\n",
			q.QuestionID, q.Rating, solvedMark(q.Solved), maxTitleWidth, truncate(q.Title, maxTitleWidth), q.ContestName)
		var err error
		if q.Solved {
			_, err = p.green.Fprint(p.w, line)
		} else {
			_, err = fmt.Fprint(p.w, line)
		}
		if err != nil {
			return err
		}
	}
	_, err := p.faint.Fprintf(p.w, "%d questions\n", len(questions))
	return err
}

func (p *Printer) Cards(cards []flashcard.Card) error {
	if len(cards) == 0 {
		_, err := fmt.Fprintln(p.w, "No flashcards found.")
		return err
	}
	for _, c := range cards {
		if _, err := p.bold.Fprintf(p.w, "%s\n", c.CardID); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(p.w, "  %s\n", truncate(firstLine(c.Content), 72)); err != nil {
			return err
		}
	}
	_, err := p.faint.Fprintf(p.w, "%d flashcards\n", len(cards))
	return err
}

func solvedMark(solved bool) string {
	if solved {
		return "yes"
	}
	return "no"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
