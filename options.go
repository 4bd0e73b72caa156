package flyer

import (
	"time"

	"github.com/tsawler/flyer/font"
	"github.com/tsawler/flyer/layout"
	"github.com/tsawler/flyer/model"
	"github.com/tsawler/flyer/pdfwriter"
	"github.com/tsawler/flyer/summary"
)

// GenerateOptions holds the configuration for a Generator.
type GenerateOptions struct {
	// Page geometry
	paper  model.PaperSize
	margin float64

	// fontFamily names a family known to font.Lookup.
	fontFamily string

	// paginate moves overflowing lines onto additional sheets.
	paginate bool

	// Output
	compress     bool
	creationDate time.Time

	// summaryTimeout bounds the single summary request.
	summaryTimeout time.Duration
}

// defaultOptions returns the default generation options.
func defaultOptions() GenerateOptions {
	lc := layout.DefaultConfig()
	wc := pdfwriter.DefaultConfig()
	return GenerateOptions{
		paper:          lc.Size,
		margin:         lc.Margin,
		fontFamily:     font.DefaultFamily,
		paginate:       lc.Paginate,
		compress:       wc.Compress,
		creationDate:   wc.CreationDate,
		summaryTimeout: summary.DefaultTimeout,
	}
}

// clone creates a copy of the options.
func (o GenerateOptions) clone() GenerateOptions {
	return o
}

// layoutConfig returns the layout configuration for these options.
func (o GenerateOptions) layoutConfig() layout.Config {
	c := layout.DefaultConfig()
	c.Size = o.paper
	c.Margin = o.margin
	c.Paginate = o.paginate
	return c
}

// writerConfig returns the writer configuration for these options.
func (o GenerateOptions) writerConfig(title string) pdfwriter.Config {
	c := pdfwriter.DefaultConfig()
	c.Compress = o.compress
	c.CreationDate = o.creationDate
	c.Title = title
	return c
}
