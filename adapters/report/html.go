package report

import (
	"context"
	"os"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"delistats/domain/stats"
	"delistats/internal/errors"
	"delistats/ports"
)

// HTMLWriter implements ports.ReportWriterPort by rendering the markdown
// report to a standalone HTML file.
type HTMLWriter struct {
	filePath string
}

var _ ports.ReportWriterPort = (*HTMLWriter)(nil)

// NewHTMLWriter creates a writer targeting the given file path
func NewHTMLWriter(filePath string) *HTMLWriter {
	return &HTMLWriter{filePath: filePath}
}

// Write renders and saves the HTML report
func (w *HTMLWriter) Write(ctx context.Context, report *stats.RunReport) error {
	md := Markdown(report)

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage})
	out := markdown.Render(doc, renderer)

	if err := os.WriteFile(w.filePath, out, 0644); err != nil {
		return errors.Wrapf(err, "failed to write HTML report to %s", w.filePath)
	}
	return nil
}
