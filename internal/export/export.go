// Package export renders the journal and check-in history to markdown and PDF.
package export

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/traitel/calmnight/internal/pdf"
	"github.com/traitel/calmnight/internal/record"
	"github.com/traitel/calmnight/internal/statistics"
)

const embeddedTemplateName = "journal-export.md.go.tmpl"

//go:embed templates/journal-export.md.go.tmpl
var fallbackExportTemplate string

// Data is what the export template renders.
type Data struct {
	GeneratedAt time.Time
	Summary     statistics.Summary
	CheckIns    []record.CheckIn
	Journals    []record.Journal
}

// NewData builds export data, listing journals and check-ins most recent first.
func NewData(checkIns []record.CheckIn, journals []record.Journal, summary statistics.Summary) Data {
	data := Data{
		GeneratedAt: summary.AsOf,
		Summary:     summary,
		CheckIns:    make([]record.CheckIn, 0, len(checkIns)),
		Journals:    make([]record.Journal, 0, len(journals)),
	}
	for i := len(checkIns) - 1; i >= 0; i-- {
		data.CheckIns = append(data.CheckIns, checkIns[i])
	}
	for i := len(journals) - 1; i >= 0; i-- {
		data.Journals = append(data.Journals, journals[i])
	}
	return data
}

// ParseTemplate parses templatePath, falling back to the embedded template when it is empty,
// missing or does not parse.
func ParseTemplate(templatePath string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join":       strings.Join,
		"formatDate": func(t time.Time) string { return t.Format("Monday, January 2, 2006") },
		"formatTime": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(templatePath)).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse an export template, using the embedded one",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(embeddedTemplateName).
		Funcs(funcMap).
		Parse(fallbackExportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

// RenderMarkdown executes tmpl with data into w.
func RenderMarkdown(w io.Writer, tmpl *template.Template, data Data) error {
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

// Result lists the files written by WriteFiles. PDFPath is empty unless a PDF was requested.
type Result struct {
	MarkdownPath string
	PDFPath      string
}

// WriteFiles renders data into directory as journal-YYYYMMDD.md and optionally converts it to PDF.
func WriteFiles(directory string, tmpl *template.Template, data Data, withPDF bool) (Result, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return Result{}, fmt.Errorf("os.MkdirAll(%s) > %w", directory, err)
	}

	markdownPath := filepath.Join(directory, "journal-"+data.GeneratedAt.Format("20060102")+".md")
	file, err := os.Create(markdownPath)
	if err != nil {
		return Result{}, fmt.Errorf("os.Create(%s) > %w", markdownPath, err)
	}
	if err := RenderMarkdown(file, tmpl, data); err != nil {
		_ = file.Close()
		return Result{}, err
	}
	if err := file.Close(); err != nil {
		return Result{}, fmt.Errorf("file.Close() > %w", err)
	}

	result := Result{MarkdownPath: markdownPath}
	if !withPDF {
		return result, nil
	}
	pdfPath, err := pdf.ConvertMarkdownToPDF(markdownPath)
	if err != nil {
		return result, fmt.Errorf("pdf.ConvertMarkdownToPDF() > %w", err)
	}
	result.PDFPath = pdfPath
	return result, nil
}
