package layout

import (
	"strings"

	"github.com/tsawler/flyer/font"
	"github.com/tsawler/flyer/model"
)

// Style is the typography assigned to one font role.
type Style struct {
	Size    float64 // Font size in points
	LineGap float64 // Extra space added below each line, in points
}

// Config holds configuration for the layout engine
type Config struct {
	// Size is the page size.
	// Default: model.A4 (595x842pt)
	Size model.PaperSize

	// Margin is applied on all four sides, in points.
	// Default: 50
	Margin float64

	// Styles maps each role to its size and line gap.
	// Default: title 24/20, heading 16/16, body 12/8
	Styles map[model.FontRole]Style

	// HeadingMaxLength is the exclusive rune-length limit for headings.
	// Default: 50
	HeadingMaxLength int

	// Paginate starts a new sheet when a baseline would fall below the
	// bottom margin.
	// Default: false (overflow lines are placed off-page)
	Paginate bool
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		Size:             model.A4,
		Margin:           50,
		Styles:           DefaultStyles(),
		HeadingMaxLength: 50,
		Paginate:         false,
	}
}

// DefaultStyles returns the default role typography.
func DefaultStyles() map[model.FontRole]Style {
	return map[model.FontRole]Style{
		model.RoleTitle:   {Size: 24, LineGap: 20},
		model.RoleHeading: {Size: 16, LineGap: 16},
		model.RoleBody:    {Size: 12, LineGap: 8},
	}
}

// Engine lays out text for a single document.
type Engine struct {
	config Config
	fonts  font.Family
	title  string
}

// NewEngine creates an engine with default configuration.
func NewEngine(fonts font.Family, title string) *Engine {
	return NewEngineWithConfig(DefaultConfig(), fonts, title)
}

// NewEngineWithConfig creates an engine with custom configuration. Zero
// fields fall back to their defaults.
func NewEngineWithConfig(config Config, fonts font.Family, title string) *Engine {
	def := DefaultConfig()
	if config.Size.Width <= 0 || config.Size.Height <= 0 {
		config.Size = def.Size
	}
	if config.Margin < 0 {
		config.Margin = def.Margin
	}
	if config.HeadingMaxLength <= 0 {
		config.HeadingMaxLength = def.HeadingMaxLength
	}
	styles := DefaultStyles()
	for role, style := range config.Styles {
		styles[role] = style
	}
	config.Styles = styles

	return &Engine{config: config, fonts: fonts, title: title}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// ContentWidth returns the page width minus both side margins.
func (e *Engine) ContentWidth() float64 {
	return e.config.Size.Width - 2*e.config.Margin
}

// Layout classifies, wraps and positions text. Every call produces a new
// page; the engine itself keeps no state between calls.
func (e *Engine) Layout(text string) *model.Page {
	page := model.NewPage(e.config.Size, e.config.Margin)
	limit := e.ContentWidth()
	top := e.config.Size.Height - e.config.Margin
	y := top
	sheet := 0

	for _, para := range Paragraphs(text) {
		role := classify(para, e.title, e.config.HeadingMaxLength)
		style := e.config.Styles[role]
		face := e.fonts.Face(role.Bold())

		for _, lineText := range Wrap(Sanitize(para), face, style.Size, limit) {
			if e.config.Paginate && y < e.config.Margin {
				sheet++
				y = top
			}
			page.AddLine(model.Line{
				Text:  lineText,
				Role:  role,
				Size:  style.Size,
				X:     e.config.Margin,
				Y:     y,
				Width: face.StringWidth(lineText, style.Size),
				Sheet: sheet,
			})
			y -= style.Size + style.LineGap
		}
	}

	return page
}

// Paragraphs splits text on line breaks and drops blank paragraphs. The
// remaining paragraphs are trimmed of surrounding whitespace.
func Paragraphs(text string) []string {
	raw := strings.Split(text, "\n")
	paras := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		paras = append(paras, p)
	}
	return paras
}
