package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/flyer"
	"github.com/tsawler/flyer/internal/config"
	"github.com/tsawler/flyer/internal/httpclient"
	"github.com/tsawler/flyer/internal/logging"
	"github.com/tsawler/flyer/loader"
	"github.com/tsawler/flyer/projects"
	"github.com/tsawler/flyer/registry"
	"github.com/tsawler/flyer/summary"
)

// app holds the dependencies shared by every command.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	gen    *flyer.Generator
}

// newApp loads configuration and wires the pipeline.
func newApp(ctx context.Context, configPath string, debug bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.Log.Debug = true
	}

	logger, err := logging.New(cfg.Log.Debug)
	if err != nil {
		return nil, err
	}

	reg := registry.Default()
	if cfg.Registry != "" {
		if reg, err = registry.LoadFile(cfg.Registry); err != nil {
			return nil, fmt.Errorf("loading registry %s: %w", cfg.Registry, err)
		}
	}

	httpClient := httpclient.New(httpclient.DefaultConfig())
	client, err := summary.NewClient(ctx, summary.ProviderConfig{
		Provider:   cfg.LLM.Provider,
		APIKey:     cfg.LLM.APIKey,
		Model:      cfg.LLM.Model,
		BaseURL:    cfg.LLM.BaseURL,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, err
	}
	if client == nil {
		logger.Info("no summary provider configured; using fallback summaries")
	}

	paper, err := cfg.PaperSize()
	if err != nil {
		return nil, err
	}

	gen := flyer.New().
		Registry(reg).
		Loader(loader.New(loader.WithHTTPClient(httpClient), loader.WithLogger(logger))).
		Summarizer(client).
		SummaryTimeout(cfg.GetLLMTimeout()).
		Logger(logger).
		Paper(paper).
		Margin(cfg.Layout.Margin).
		Fonts(cfg.Layout.Fonts).
		Compress(cfg.Render.Compress)
	if cfg.Layout.Paginate {
		gen = gen.Paginate()
	}

	return &app{cfg: cfg, logger: logger, gen: gen}, nil
}

// projectStore opens the configured project store. The returned close
// function is never nil.
func (a *app) projectStore(ctx context.Context) (projects.Store, func(), error) {
	switch {
	case a.cfg.DatabaseURL != "":
		store, err := projects.OpenPostgres(ctx, a.cfg.DatabaseURL, a.logger)
		if err != nil {
			return nil, func() {}, err
		}
		return store, store.Close, nil
	case a.cfg.Projects != "":
		store, err := projects.LoadFile(a.cfg.Projects)
		if err != nil {
			return nil, func() {}, fmt.Errorf("loading projects %s: %w", a.cfg.Projects, err)
		}
		return store, func() {}, nil
	default:
		return nil, func() {}, nil
	}
}

func (a *app) close() {
	_ = a.logger.Sync()
}
