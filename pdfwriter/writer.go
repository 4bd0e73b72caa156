// Package pdfwriter encodes laid-out pages as PDF.
//
// The writer registers the regular and bold faces of a font family once per
// document and draws every line at its computed baseline. A line that cannot
// be drawn, typically because the font has no glyph for one of its
// characters, is skipped and reported in Result.Failures; it never aborts the
// document.
package pdfwriter

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/tsawler/flyer/font"
	"github.com/tsawler/flyer/model"
)

// DefaultSuspiciousBytes is the output size below which a document is
// flagged as suspicious.
const DefaultSuspiciousBytes = 100

// Config holds configuration for the writer
type Config struct {
	// Compress enables stream compression.
	// Default: true
	Compress bool

	// CreationDate is written to the document information dictionary.
	// A fixed date keeps output byte-identical across runs.
	// Default: 2000-01-01T00:00:00Z
	CreationDate time.Time

	// SuspiciousBytes is the advisory minimum output size.
	// Default: 100
	SuspiciousBytes int

	// Title, Author and Creator populate the document information
	// dictionary when set.
	Title   string
	Author  string
	Creator string
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		Compress:        true,
		CreationDate:    time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		SuspiciousBytes: DefaultSuspiciousBytes,
		Creator:         "flyer",
	}
}

// LineResult records a line that could not be drawn.
type LineResult struct {
	Index int    // Index into model.Page.Lines
	Text  string // Text of the skipped line
	Err   error
}

// Error implements error.
func (r LineResult) Error() string {
	return fmt.Sprintf("line %d: %v", r.Index, r.Err)
}

// Unwrap returns the underlying error.
func (r LineResult) Unwrap() error {
	return r.Err
}

// Result is a rendered document.
type Result struct {
	Bytes      []byte
	Pages      int
	Failures   []LineResult
	Suspicious bool // len(Bytes) is below the configured threshold
}

// Writer renders pages with one font family.
type Writer struct {
	fonts  font.Family
	config Config
	logger *zap.Logger
}

// NewWriter creates a writer with default configuration.
func NewWriter(fonts font.Family) *Writer {
	return NewWriterWithConfig(DefaultConfig(), fonts)
}

// NewWriterWithConfig creates a writer with custom configuration.
func NewWriterWithConfig(config Config, fonts font.Family) *Writer {
	if config.CreationDate.IsZero() {
		config.CreationDate = DefaultConfig().CreationDate
	}
	if config.SuspiciousBytes <= 0 {
		config.SuspiciousBytes = DefaultSuspiciousBytes
	}
	return &Writer{fonts: fonts, config: config, logger: zap.NewNop()}
}

// WithLogger returns a copy of the writer that logs to logger.
func (w *Writer) WithLogger(logger *zap.Logger) *Writer {
	c := *w
	c.logger = logger
	return &c
}

// Write renders page. Per-line failures are returned in the Result; the
// error is reserved for failures that prevent producing any output.
func (w *Writer) Write(page *model.Page) (Result, error) {
	if page == nil {
		return Result{}, fmt.Errorf("nil page")
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: page.Size.Width, Ht: page.Size.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCompression(w.config.Compress)
	pdf.SetCreationDate(w.config.CreationDate)
	pdf.SetCatalogSort(true)
	if w.config.Title != "" {
		pdf.SetTitle(w.config.Title, true)
	}
	if w.config.Author != "" {
		pdf.SetAuthor(w.config.Author, true)
	}
	if w.config.Creator != "" {
		pdf.SetCreator(w.config.Creator, true)
	}

	if err := w.registerFonts(pdf); err != nil {
		return Result{}, err
	}

	var failures []LineResult
	pdf.AddPage()
	sheet := 0
	for i, line := range page.Lines {
		for sheet < line.Sheet {
			pdf.AddPage()
			sheet++
		}
		if err := w.drawLine(pdf, page, line); err != nil {
			lr := LineResult{Index: i, Text: line.Text, Err: err}
			failures = append(failures, lr)
			w.logger.Warn("line skipped",
				zap.Int("line", i),
				zap.String("role", line.Role.String()),
				zap.Error(err))
		}
	}
	// Trailing empty sheets still count as pages.
	for pdf.PageCount() < page.Sheets {
		pdf.AddPage()
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Result{}, fmt.Errorf("serializing PDF: %w", err)
	}

	res := Result{
		Bytes:      buf.Bytes(),
		Pages:      pdf.PageCount(),
		Failures:   failures,
		Suspicious: buf.Len() < w.config.SuspiciousBytes,
	}
	if res.Suspicious {
		w.logger.Warn("suspiciously small output", zap.Int("bytes", buf.Len()))
	}
	return res, nil
}

// registerFonts embeds TrueType programs once per document. Standard fonts
// are built into every PDF reader and need no registration.
func (w *Writer) registerFonts(pdf *gofpdf.Fpdf) error {
	for _, face := range []font.Face{w.fonts.Regular, w.fonts.Bold} {
		if face == nil {
			return fmt.Errorf("font family %q is incomplete", w.fonts.Name)
		}
		program := face.Program()
		if program == nil {
			continue
		}
		pdf.AddUTF8FontFromBytes(face.Family(), face.Style(), program)
		if pdf.Err() {
			return fmt.Errorf("registering %s: %w", face.Name(), pdf.Error())
		}
	}
	return nil
}

func (w *Writer) drawLine(pdf *gofpdf.Fpdf, page *model.Page, line model.Line) error {
	face := w.fonts.Face(line.Role.Bold())
	text, err := face.Encode(line.Text)
	if err != nil {
		return err
	}

	pdf.SetFont(face.Family(), face.Style(), line.Size)
	if !pdf.Err() {
		// Baselines are bottom-up; gofpdf measures from the top edge.
		pdf.Text(line.X, page.Size.Height-line.Y, text)
	}
	if pdf.Err() {
		err := pdf.Error()
		pdf.ClearError()
		return err
	}
	return nil
}
