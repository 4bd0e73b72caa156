// Package server exposes flyer generation over HTTP.
//
// Routes:
//
//	GET  /healthz
//	GET  /v1/templates
//	POST /v1/documents/{template}             JSON project data in the body
//	GET  /v1/projects/{id}/documents/{template} project data from the store
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/flyer"
	"github.com/tsawler/flyer/model"
	"github.com/tsawler/flyer/projects"
)

// DefaultMaxBodyBytes limits the size of a project payload.
const DefaultMaxBodyBytes = 64 << 10

// Response headers describing the generated document.
const (
	HeaderRunID         = "X-Flyer-Run-ID"
	HeaderSummarySource = "X-Flyer-Summary-Source"
	HeaderWarnings      = "X-Flyer-Warnings"
)

// Message is the JSON body of an error response.
type Message struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// TemplateInfo describes a template in the listing.
type TemplateInfo struct {
	ID           string   `json:"id"`
	Name         string   `json:"name,omitempty"`
	Placeholders []string `json:"placeholders"`
}

// Server handles flyer HTTP requests.
type Server struct {
	gen      *flyer.Generator
	projects projects.Store
	logger   *zap.Logger
	maxBody  int64
	mux      *http.ServeMux
}

// Option configures a Server.
type Option func(*Server)

// WithProjects enables the project routes backed by store.
func WithProjects(store projects.Store) Option {
	return func(s *Server) {
		s.projects = store
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxBodyBytes sets the request body limit.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		s.maxBody = n
	}
}

// New returns a Server that generates documents with gen.
func New(gen *flyer.Generator, opts ...Option) *Server {
	s := &Server{
		gen:     gen,
		logger:  zap.NewNop(),
		maxBody: DefaultMaxBodyBytes,
		mux:     http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.HandleFunc("GET /v1/templates", s.handleTemplates)
	s.mux.HandleFunc("POST /v1/documents/{template}", s.handleGenerate)
	s.mux.HandleFunc("GET /v1/projects/{id}/documents/{template}", s.handleGenerateProject)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.recoverWrapper(s.logRequests(s.mux)).ServeHTTP(w, r)
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("server shutdown failed", zap.Error(err))
	}
	return <-errCh
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	templates := s.gen.Templates()
	out := make([]TemplateInfo, 0, len(templates))
	for _, tpl := range templates {
		keys := make([]string, len(tpl.Placeholders))
		for i, p := range tpl.Placeholders {
			keys[i] = p.Key
		}
		out = append(out, TemplateInfo{ID: tpl.ID, Name: tpl.Name, Placeholders: keys})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var project model.ProjectData
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&project); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		case errors.Is(err, io.EOF):
			writeError(w, http.StatusBadRequest, "request body is empty")
		default:
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid project data: %v", err))
		}
		return
	}
	if project.IsZero() {
		writeError(w, http.StatusBadRequest, "project data is empty")
		return
	}

	s.generate(w, r, r.PathValue("template"), project)
}

func (s *Server) handleGenerateProject(w http.ResponseWriter, r *http.Request) {
	if s.projects == nil {
		writeError(w, http.StatusNotFound, "no project store configured")
		return
	}

	project, err := s.projects.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.logger.Error("project lookup failed", zap.String("project", r.PathValue("id")), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "project lookup failed")
		return
	}

	s.generate(w, r, r.PathValue("template"), project)
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request, templateID string, project model.ProjectData) {
	doc, err := s.gen.Generate(r.Context(), templateID, project)
	if err != nil {
		status := statusFor(err)
		if status >= 500 {
			s.logger.Error("generation failed", zap.String("template", templateID), zap.Error(err))
		}
		writeError(w, status, err.Error())
		return
	}

	w.Header().Set(HeaderRunID, doc.RunID)
	w.Header().Set(HeaderSummarySource, doc.SummarySource.String())
	w.Header().Set(HeaderWarnings, strconv.Itoa(len(doc.Warnings)))
	w.Header().Set("Content-Length", strconv.Itoa(doc.Size))
	writePDF(w, filename(project.Title), doc.Bytes, s.logger)
}

// statusFor maps a pipeline error to an HTTP status.
func statusFor(err error) int {
	switch flyer.KindOf(err) {
	case flyer.KindTemplateNotFound:
		return http.StatusNotFound
	case flyer.KindAssetUnavailable:
		return http.StatusBadGateway
	case flyer.KindUnsupportedAsset:
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

var unsafeFilename = regexp.MustCompile(`[^a-z0-9]+`)

// filename derives a download name from the project title.
func filename(title string) string {
	slug := strings.Trim(unsafeFilename.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if slug == "" {
		slug = "flyer"
	}
	return slug + ".pdf"
}

func (s *Server) recoverWrapper(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered",
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()))
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		inner.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		inner.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)))
	})
}
