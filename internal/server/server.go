// Package server serves the interactive resume page and its PDF export over
// HTTP.
package server

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"pkt.systems/cvdash"
	"pkt.systems/cvdash/export"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

const textWidth = 80

// Server renders one resume document.
type Server struct {
	doc       *cvdash.Document
	exporter  *export.Exporter
	log       *slog.Logger
	downloads singleflight.Group
}

// New returns a Server for doc. PDF downloads go through exporter.
func New(doc *cvdash.Document, exporter *export.Exporter, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{doc: doc, exporter: exporter, log: log}
}

type pageData struct {
	View     cvdash.View
	Nav      []cvdash.NavItem
	MenuOpen bool
	HasPhoto bool
}

// Handler returns the routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/photo", s.handlePhoto)
	r.Get("/resume.pdf", s.handlePDF)
	r.Get("/resume.txt", s.handleText)
	r.Get("/healthz", handleHealth)
	return r
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.log.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			return errors.Wrap(err, "server error")
		}
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		View:     cvdash.BuildView(s.doc),
		Nav:      cvdash.NavSections,
		MenuOpen: r.URL.Query().Get("menu") == "open",
		HasPhoto: s.doc.PhotoPath() != "",
	}
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		s.log.Error("render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func (s *Server) handlePhoto(w http.ResponseWriter, r *http.Request) {
	path := s.doc.PhotoPath()
	if path == "" {
		http.NotFound(w, r)
		return
	}
	if _, err := os.Stat(path); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := cvdash.Render(cvdash.RenderRequest{
		Document: s.doc,
		Writer:   &buf,
		Width:    textWidth,
		Theme:    cvdash.BoringTheme(),
	})
	if err != nil {
		s.log.Error("render text", "error", err)
		http.Error(w, "failed to render text", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	buf.WriteTo(w)
}

// handlePDF renders the export in memory. Simultaneous requests share one
// render; a request that finds the exporter busy with another caller gets
// 409.
func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	v, err, shared := s.downloads.Do(export.FileName, func() (any, error) {
		var buf bytes.Buffer
		if _, err := s.exporter.Write(context.WithoutCancel(r.Context()), s.doc, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if errors.Is(err, export.ErrInProgress) {
		http.Error(w, "an export is already running", http.StatusConflict)
		return
	}
	if err != nil {
		s.log.Error("export pdf", "error", err)
		http.Error(w, "failed to export pdf", http.StatusInternalServerError)
		return
	}
	data := v.([]byte)
	s.log.Debug("pdf served", "bytes", len(data), "shared", shared)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	w.Write(data)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
