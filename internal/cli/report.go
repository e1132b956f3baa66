package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/at-ishikawa/lcsolved/internal/pdf"
	"github.com/at-ishikawa/lcsolved/internal/statistics"
)

// Progress writes the per-bucket solving progress. Buckets at or above half
// solved are highlighted.
func (p *Printer) Progress(result statistics.ProgressResult) error {
	if len(result.Buckets) == 0 {
		_, err := fmt.Fprintln(p.w, "No questions in the catalog yet.")
		return err
	}

	if _, err := p.bold.Fprintln(p.w, "Solved Progress Report"); err != nil {
		return err
	}
	fmt.Fprintln(p.w, "======================")
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "%-11s  %-16s  %s\n", "Rating", "Solved / Total", "Progress")
	fmt.Fprintf(p.w, "%-11s  %-16s  %s\n", "------", "--------------", "--------")

	for _, b := range result.Buckets {
		line := fmt.Sprintf("%-11s  %-16s  %5.1f%%\n", b.Label(), fmt.Sprintf("%d / %d", b.Solved, b.Total), b.Percent())
		var err error
		if b.Percent() >= 50 {
			_, err = p.green.Fprint(p.w, line)
		} else {
			_, err = fmt.Fprint(p.w, line)
		}
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(p.w)
	_, err := p.bold.Fprintf(p.w, "%-11s  %-16s  %5.1f%%\n",
		"Totals:",
		fmt.Sprintf("%d / %d", result.Aggregate.Solved, result.Aggregate.Total),
		result.Aggregate.Percent(),
	)
	return err
}

// ProgressMarkdown renders the report as a markdown document.
func ProgressMarkdown(result statistics.ProgressResult, generatedAt time.Time) string {
	var sb strings.Builder
	sb.WriteString("# Solved Progress Report\n\n")
	fmt.Fprintf(&sb, "Generated at %s\n\n", generatedAt.Format(time.DateTime))
	fmt.Fprintf(&sb, "Solved **%d** of **%d** questions (%.1f%%).\n\n",
		result.Aggregate.Solved, result.Aggregate.Total, result.Aggregate.Percent())

	sb.WriteString("| Rating | Solved | Total | Progress |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, b := range result.Buckets {
		fmt.Fprintf(&sb, "| %s | %d | %d | %.1f%% |\n", b.Label(), b.Solved, b.Total, b.Percent())
	}
	return sb.String()
}

// WriteProgressMarkdown writes the markdown report to path and, when toPDF is
// set, converts it next to it. It returns the paths written.
func WriteProgressMarkdown(path string, result statistics.ProgressResult, generatedAt time.Time, toPDF bool) ([]string, error) {
	if err := os.WriteFile(path, []byte(ProgressMarkdown(result, generatedAt)), 0644); err != nil {
		return nil, fmt.Errorf("write report %s: %w", path, err)
	}
	written := []string{path}
	if !toPDF {
		return written, nil
	}

	pdfPath, err := pdf.ConvertMarkdownToPDF(path)
	if err != nil {
		return written, fmt.Errorf("convert report to PDF: %w", err)
	}
	return append(written, pdfPath), nil
}
