package flyer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tsawler/flyer/font"
	"github.com/tsawler/flyer/layout"
	"github.com/tsawler/flyer/loader"
	"github.com/tsawler/flyer/merge"
	"github.com/tsawler/flyer/model"
	"github.com/tsawler/flyer/pdfwriter"
	"github.com/tsawler/flyer/registry"
	"github.com/tsawler/flyer/summary"
)

// State is the progress of a single run.
type State int

const (
	StatePending State = iota
	StateTemplateResolved
	StateAssetLoaded
	StateSummaryReady
	StateMerged
	StateLaidOut
	StateRendered
	StateDone
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateTemplateResolved:
		return "template_resolved"
	case StateAssetLoaded:
		return "asset_loaded"
	case StateSummaryReady:
		return "summary_ready"
	case StateMerged:
		return "merged"
	case StateLaidOut:
		return "laid_out"
	case StateRendered:
		return "rendered"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Document is the result of a successful run.
type Document struct {
	RunID         string
	TemplateID    string
	Bytes         []byte
	Size          int
	Summary       string
	SummarySource summary.Source
	Page          model.Page
	Warnings      []Warning
}

// Text returns the text drawn on the document, one line per laid-out line.
func (d *Document) Text() string {
	return d.Page.ExtractText()
}

// Generator provides a fluent interface for producing flyers.
// Each configuration method returns a new Generator instance, making it
// safe for concurrent use and allowing method chaining.
type Generator struct {
	registry *registry.Registry
	loader   *loader.Loader
	client   summary.Client
	logger   *zap.Logger

	options GenerateOptions
}

// clone creates a shallow copy of the Generator with a copy of options.
func (g *Generator) clone() *Generator {
	return &Generator{
		registry: g.registry,
		loader:   g.loader,
		client:   g.client,
		logger:   g.logger,
		options:  g.options.clone(),
	}
}

// Registry sets the template registry.
//
// Example:
//
//	reg, _ := registry.LoadFile("templates.yaml")
//	doc, err := flyer.New().Registry(reg).Generate(ctx, "brochure", project)
func (g *Generator) Registry(r *registry.Registry) *Generator {
	newGen := g.clone()
	newGen.registry = r
	return newGen
}

// Loader sets the asset loader.
func (g *Generator) Loader(l *loader.Loader) *Generator {
	newGen := g.clone()
	newGen.loader = l
	return newGen
}

// Summarizer sets the client used for the summary. A nil client selects the
// fallback summary for every run.
//
// Example:
//
//	client, _ := summary.NewOpenAIClient(summary.OpenAIConfig{APIKey: key})
//	doc, err := flyer.New().Summarizer(client).Generate(ctx, "basic", project)
func (g *Generator) Summarizer(client summary.Client) *Generator {
	newGen := g.clone()
	newGen.client = client
	return newGen
}

// SummaryTimeout bounds the summary request. Non-positive values select
// summary.DefaultTimeout.
func (g *Generator) SummaryTimeout(d time.Duration) *Generator {
	newGen := g.clone()
	if d <= 0 {
		d = summary.DefaultTimeout
	}
	newGen.options.summaryTimeout = d
	return newGen
}

// Logger sets the logger. Library use defaults to a no-op logger.
func (g *Generator) Logger(logger *zap.Logger) *Generator {
	newGen := g.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	newGen.logger = logger
	return newGen
}

// Paper sets the page size.
func (g *Generator) Paper(size model.PaperSize) *Generator {
	newGen := g.clone()
	newGen.options.paper = size
	return newGen
}

// Margin sets the margin applied on all four sides, in points.
func (g *Generator) Margin(points float64) *Generator {
	newGen := g.clone()
	newGen.options.margin = points
	return newGen
}

// Fonts selects the font family by name (see font.Families).
//
// Example:
//
//	doc, err := flyer.New().Fonts("go").Generate(ctx, "basic", project)
func (g *Generator) Fonts(family string) *Generator {
	newGen := g.clone()
	newGen.options.fontFamily = family
	return newGen
}

// Paginate enables new sheets for content that overflows the first one.
func (g *Generator) Paginate() *Generator {
	newGen := g.clone()
	newGen.options.paginate = true
	return newGen
}

// Compress enables or disables PDF stream compression.
func (g *Generator) Compress(enabled bool) *Generator {
	newGen := g.clone()
	newGen.options.compress = enabled
	return newGen
}

// CreationDate sets the date written into the document information
// dictionary.
func (g *Generator) CreationDate(t time.Time) *Generator {
	newGen := g.clone()
	newGen.options.creationDate = t
	return newGen
}

// Templates returns the templates available to Generate.
func (g *Generator) Templates() []registry.Template {
	if g.registry == nil {
		return nil
	}
	return g.registry.Templates()
}

// run tracks a single invocation.
type run struct {
	id       string
	state    State
	logger   *zap.Logger
	warnings []Warning
}

func (r *run) advance(s State) {
	r.state = s
	r.logger.Debug("state changed", zap.String("state", s.String()))
}

func (r *run) fail(stage Stage, kind Kind, err error) error {
	r.logger.Error("run failed",
		zap.String("stage", string(stage)),
		zap.String("kind", kind.String()),
		zap.Error(err))
	return &Error{Stage: stage, Kind: kind, RunID: r.id, Err: err}
}

func (r *run) warn(w Warning) {
	r.warnings = append(r.warnings, w)
	fields := []zap.Field{
		zap.String("stage", string(w.Stage)),
		zap.String("kind", w.Kind.String()),
	}
	if w.Line >= 0 {
		fields = append(fields, zap.Int("line", w.Line))
	}
	if w.Err != nil {
		fields = append(fields, zap.Error(w.Err))
	}
	r.logger.Warn(w.Message, fields...)
}

// Generate produces the flyer for project using the template templateID.
//
// Failures up to and including text extraction return an *Error and no
// document. From the summary stage on a document is always produced; problems
// are reported in Document.Warnings. A context that is already done returns
// ctx.Err().
func (g *Generator) Generate(ctx context.Context, templateID string, project model.ProjectData) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	r := &run{
		id:    id,
		state: StatePending,
		logger: g.logger.With(
			zap.String("run_id", id),
			zap.String("template", templateID)),
	}
	start := time.Now()

	fonts, err := font.Lookup(g.options.fontFamily)
	if err != nil {
		return nil, r.fail(StageConfigure, KindInvalidConfig, err)
	}
	if g.registry == nil {
		return nil, r.fail(StageConfigure, KindInvalidConfig, errors.New("no template registry"))
	}

	tpl, err := g.registry.Resolve(templateID)
	if err != nil {
		return nil, r.fail(StageResolve, KindTemplateNotFound, err)
	}
	r.advance(StateTemplateResolved)

	ld := g.loader
	if ld == nil {
		ld = loader.New(loader.WithLogger(r.logger))
	}
	raw, err := ld.Fetch(ctx, tpl.Asset)
	if err != nil {
		return nil, r.fail(StageFetch, KindAssetUnavailable, err)
	}
	text, err := loader.ExtractText(raw)
	if err != nil {
		return nil, r.fail(StageExtract, KindUnsupportedAsset, err)
	}
	r.advance(StateAssetLoaded)

	sg := summary.NewGenerator(g.client,
		summary.WithTimeout(g.options.summaryTimeout),
		summary.WithLogger(r.logger))
	sum := sg.Generate(ctx, project.Title, project.Address)
	if sum.Degraded() {
		r.warn(Warning{
			Kind:    WarnGenerationDegraded,
			Stage:   StageSummarize,
			Message: "using fallback summary",
			Line:    -1,
			Err:     sum.Err,
		})
	}
	r.advance(StateSummaryReady)

	m := merge.Build(tpl, project, sum.Text)
	merged := merge.Merge(text, m)
	if left := merge.Residual(merged, m); len(left) > 0 {
		r.logger.Debug("selectors reintroduced by values", zap.Strings("selectors", left))
	}
	r.advance(StateMerged)

	engine := layout.NewEngineWithConfig(g.options.layoutConfig(), fonts, project.Title)
	page := engine.Layout(merged)
	if n := page.OffPage(); n > 0 {
		r.warn(Warning{
			Kind:    WarnOverflow,
			Stage:   StageLayout,
			Message: fmt.Sprintf("%d line(s) positioned below the printable area", n),
			Line:    -1,
		})
	}
	r.advance(StateLaidOut)

	writer := pdfwriter.NewWriterWithConfig(g.options.writerConfig(project.Title), fonts).
		WithLogger(r.logger)
	out, err := writer.Write(page)
	if err != nil {
		return nil, r.fail(StageRender, KindRenderFailed, err)
	}
	for _, f := range out.Failures {
		r.warn(Warning{
			Kind:    WarnRender,
			Stage:   StageRender,
			Message: fmt.Sprintf("skipped line %q", f.Text),
			Line:    f.Index,
			Err:     f.Err,
		})
	}
	if out.Suspicious {
		r.warn(Warning{
			Kind:    WarnSuspiciousOutput,
			Stage:   StageRender,
			Message: fmt.Sprintf("document is only %d bytes", len(out.Bytes)),
			Line:    -1,
		})
	}
	r.advance(StateRendered)

	doc := &Document{
		RunID:         r.id,
		TemplateID:    tpl.ID,
		Bytes:         out.Bytes,
		Size:          len(out.Bytes),
		Summary:       sum.Text,
		SummarySource: sum.Source,
		Page:          *page,
		Warnings:      r.warnings,
	}
	r.advance(StateDone)
	r.logger.Info("document generated",
		zap.Int("bytes", doc.Size),
		zap.Int("pages", out.Pages),
		zap.String("summary_source", sum.Source.String()),
		zap.Int("warnings", len(doc.Warnings)),
		zap.Duration("elapsed", time.Since(start)))
	return doc, nil
}
