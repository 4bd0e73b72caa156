// Package summary produces marketing prose for a property.
//
// A Generator asks a generative text service for a short description. The
// call is made exactly once and bounded by a timeout; when it fails for any
// reason the Generator substitutes a deterministic sentence built from the
// title and address. Generate never returns an error: the cause of a
// fallback is reported in Result.Err.
package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// SystemPrompt is the system instruction sent with every request.
const SystemPrompt = "You are a professional real estate copywriter."

// DefaultTimeout bounds a single generation request.
const DefaultTimeout = 15 * time.Second

var (
	// ErrNoClient is reported when no generative service is configured.
	ErrNoClient = errors.New("no generative text client configured")
	// ErrEmptyResponse is reported when the service returns no usable text.
	ErrEmptyResponse = errors.New("generative text response has no content")
)

// Client issues one generation request.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ClientFunc adapts a function to the Client interface.
type ClientFunc func(ctx context.Context, system, user string) (string, error)

// Complete calls f.
func (f ClientFunc) Complete(ctx context.Context, system, user string) (string, error) {
	return f(ctx, system, user)
}

// Fixed returns a Client that always answers text.
func Fixed(text string) Client {
	return ClientFunc(func(context.Context, string, string) (string, error) {
		return text, nil
	})
}

// Source tells where the summary text came from.
type Source int

const (
	// SourceGenerated means the text came from the generative service.
	SourceGenerated Source = iota
	// SourceFallback means the deterministic fallback sentence was used.
	SourceFallback
)

// String returns the string representation of the source.
func (s Source) String() string {
	if s == SourceFallback {
		return "fallback"
	}
	return "generated"
}

// Result is the summary actually used.
type Result struct {
	Text   string
	Source Source
	Err    error // cause of the fallback; nil when generated
}

// Degraded reports whether the fallback was used.
func (r Result) Degraded() bool {
	return r.Source == SourceFallback
}

// Generator requests summaries from a Client.
type Generator struct {
	client  Client
	timeout time.Duration
	logger  *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithTimeout sets the request timeout. Non-positive values select
// DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// NewGenerator creates a Generator. A nil client always yields the fallback.
func NewGenerator(client Client, opts ...Option) *Generator {
	g := &Generator{
		client:  client,
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Timeout returns the request timeout.
func (g *Generator) Timeout() time.Duration {
	return g.timeout
}

// Generate returns a summary for the property. It makes at most one request.
func (g *Generator) Generate(ctx context.Context, title, address string) Result {
	if g == nil || g.client == nil {
		return fallback(title, address, ErrNoClient)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	text, err := g.client.Complete(ctx, SystemPrompt, Prompt(title, address))
	if err == nil {
		text = strings.TrimSpace(text)
		if text == "" {
			err = ErrEmptyResponse
		}
	}
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
		}
		g.logger.Warn("summary generation degraded",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return fallback(title, address, err)
	}

	g.logger.Debug("summary generated",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("length", len(text)))
	return Result{Text: text, Source: SourceGenerated}
}

// Prompt returns the user instruction for a property.
func Prompt(title, address string) string {
	return fmt.Sprintf(
		"Write a short, engaging marketing summary of two or three sentences for the property %q located at %s. "+
			"Reply with the summary only, as plain text without headings or markdown.",
		title, address)
}

// Fallback returns the deterministic summary used when generation fails.
func Fallback(title, address string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "This property"
	}
	address = strings.TrimSpace(address)
	if address == "" {
		address = "a prime location"
	}
	return fmt.Sprintf("%s is an exceptional property located at %s.", title, address)
}

func fallback(title, address string, err error) Result {
	return Result{Text: Fallback(title, address), Source: SourceFallback, Err: err}
}
