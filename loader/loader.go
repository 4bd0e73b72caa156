// Package loader fetches template assets and converts them to plain text.
//
// Assets are addressed by location:
//
//	https://assets.example/flyer.docx   downloaded over HTTP(S)
//	file:///srv/templates/flyer.odt     read from disk
//	/srv/templates/flyer.html           read from disk
//	embed://basic.html                  read from the built-in asset filesystem
//
// Text extraction discards all styling and emits one paragraph per line.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/flyer/docx"
	"github.com/tsawler/flyer/format"
	"github.com/tsawler/flyer/htmldoc"
	"github.com/tsawler/flyer/internal/httpclient"
	"github.com/tsawler/flyer/odt"
	"github.com/tsawler/flyer/registry"
)

var (
	// ErrAssetUnavailable is returned when an asset cannot be retrieved.
	ErrAssetUnavailable = errors.New("asset unavailable")
	// ErrUnsupportedAsset is returned when asset bytes cannot be parsed.
	ErrUnsupportedAsset = errors.New("unsupported asset")
)

// DefaultMaxAssetBytes caps the size of a fetched asset.
const DefaultMaxAssetBytes = 10 << 20

// Loader retrieves template assets. A Loader is safe for concurrent use.
type Loader struct {
	client   *http.Client
	assets   fs.FS
	maxBytes int64
	logger   *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient sets the client used for http and https locations.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) { l.client = client }
}

// WithAssets sets the filesystem that serves embed:// locations.
func WithAssets(assets fs.FS) Option {
	return func(l *Loader) { l.assets = assets }
}

// WithMaxAssetBytes sets the maximum accepted asset size.
func WithMaxAssetBytes(n int64) Option {
	return func(l *Loader) { l.maxBytes = n }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// New creates a Loader. By default embed:// locations are served from the
// built-in registry assets.
func New(opts ...Option) *Loader {
	l := &Loader{
		client:   httpclient.New(httpclient.DefaultConfig()),
		assets:   registry.Assets(),
		maxBytes: DefaultMaxAssetBytes,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Fetch retrieves the raw bytes of the asset at location. Every failure
// wraps ErrAssetUnavailable.
func (l *Loader) Fetch(ctx context.Context, location string) ([]byte, error) {
	if strings.TrimSpace(location) == "" {
		return nil, fmt.Errorf("%w: empty location", ErrAssetUnavailable)
	}

	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetUnavailable, err)
	}

	var data []byte
	switch u.Scheme {
	case "http", "https":
		data, err = l.fetchHTTP(ctx, u.String())
	case "file":
		data, err = l.readFile(u.Path)
	case "embed":
		data, err = l.readEmbedded(strings.TrimPrefix(u.Host+u.Path, "/"))
	case "":
		data, err = l.readFile(location)
	default:
		err = fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if err != nil {
		l.logger.Debug("asset fetch failed", zap.String("location", location), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetUnavailable, location, err)
	}

	l.logger.Debug("asset fetched", zap.String("location", location), zap.Int("bytes", len(data)))
	return data, nil
}

// Load fetches the asset at location and extracts its text.
func (l *Loader) Load(ctx context.Context, location string) (string, error) {
	raw, err := l.Fetch(ctx, location)
	if err != nil {
		return "", err
	}
	return ExtractText(raw)
}

func (l *Loader) fetchHTTP(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return l.readLimited(resp.Body)
}

func (l *Loader) readFile(name string) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", name)
	}
	return l.readLimited(f)
}

func (l *Loader) readEmbedded(name string) ([]byte, error) {
	if l.assets == nil {
		return nil, fmt.Errorf("no embedded assets configured")
	}
	name = path.Clean(name)
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid asset path %q", name)
	}
	f, err := l.assets.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return l.readLimited(f)
}

func (l *Loader) readLimited(r io.Reader) ([]byte, error) {
	if l.maxBytes <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, l.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > l.maxBytes {
		return nil, fmt.Errorf("asset exceeds %d bytes", l.maxBytes)
	}
	return data, nil
}

// ExtractText converts raw asset bytes into plain text with one paragraph
// per line. Supported formats are DOCX, ODT, HTML and UTF-8 text. The result
// is NFC-normalised. Failures wrap ErrUnsupportedAsset.
func ExtractText(raw []byte) (string, error) {
	var (
		text string
		err  error
	)

	f := format.DetectBytes(raw)
	switch f {
	case format.DOCX:
		var r *docx.Reader
		if r, err = docx.Open(raw); err == nil {
			text = r.Text()
		}
	case format.ODT:
		var r *odt.Reader
		if r, err = odt.Open(raw); err == nil {
			text = r.Text()
		}
	case format.HTML:
		var r *htmldoc.Reader
		if r, err = htmldoc.OpenReader(bytes.NewReader(raw)); err == nil {
			text, err = r.Text()
		}
	case format.Text:
		text = strings.TrimPrefix(string(raw), "\ufeff")
		text = strings.ReplaceAll(text, "\r\n", "\n")
		text = strings.ReplaceAll(text, "\r", "\n")
	default:
		return "", fmt.Errorf("%w: unrecognized %s content", ErrUnsupportedAsset, f)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUnsupportedAsset, f, err)
	}

	return norm.NFC.String(text), nil
}
