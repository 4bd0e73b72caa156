// Package flyer turns a named template and a property's data into a
// printable PDF flyer.
//
// Basic usage:
//
//	doc, err := flyer.New().Generate(ctx, "basic", model.ProjectData{
//	    Title:   "Sunny Villa",
//	    Address: "123 Lake Rd",
//	})
//	if err != nil {
//	    // handle error
//	}
//	if len(doc.Warnings) > 0 {
//	    log.Println("Warnings:", flyer.FormatWarnings(doc.Warnings))
//	}
//	os.WriteFile("flyer.pdf", doc.Bytes, 0o644)
//
// With options:
//
//	client, _ := summary.NewOpenAIClient(summary.OpenAIConfig{APIKey: key})
//	doc, err := flyer.New().
//	    Summarizer(client).
//	    Fonts("go").
//	    Paginate().
//	    Generate(ctx, "basic", project)
//
// The stages are also usable on their own: registry, loader, summary,
// merge, layout and pdfwriter.
package flyer

import (
	"go.uber.org/zap"

	"github.com/tsawler/flyer/loader"
	"github.com/tsawler/flyer/registry"
)

// New returns a Generator using the embedded template registry, a default
// loader and no summary client. Without a client every document carries the
// fallback summary.
//
// Example:
//
//	doc, err := flyer.New().Generate(ctx, "basic", project)
func New() *Generator {
	return &Generator{
		registry: registry.Default(),
		loader:   loader.New(),
		logger:   zap.NewNop(),
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call returning (T, error) and panics if err
// is non-nil.
//
// Example:
//
//	doc := flyer.Must(flyer.New().Generate(ctx, "basic", project))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
