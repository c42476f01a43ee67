// Package export turns a resume document into resume.pdf, one run at a time.
package export

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/semaphore"

	"pkt.systems/cvdash"
	"pkt.systems/cvdash/pdf"
)

// FileName is the name of the exported artifact.
const FileName = "resume.pdf"

// ErrInProgress is returned when an export is started while another one is
// still running on the same Exporter.
var ErrInProgress = errors.New("export already in progress")

// Error describes a failed export step.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "export " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Result describes a finished export.
type Result struct {
	RunID string
	Path  string
	Pages int
	Bytes int64
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithConfig sets the PDF layout configuration.
func WithConfig(cfg pdf.Config) Option {
	return func(e *Exporter) { e.cfg = cfg }
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.log = l
		}
	}
}

// Exporter renders documents to PDF. It is safe for concurrent use; at most
// one export runs at a time and others fail fast with ErrInProgress.
type Exporter struct {
	cfg  pdf.Config
	log  *slog.Logger
	gate *semaphore.Weighted
}

// New returns an Exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		cfg:  pdf.DefaultConfig(),
		log:  slog.Default(),
		gate: semaphore.NewWeighted(1),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Export writes dir/resume.pdf. The file is written to a temporary name and
// renamed into place, so an existing resume.pdf is replaced whole or not at
// all.
func (e *Exporter) Export(ctx context.Context, doc *cvdash.Document, dir string) (Result, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, FileName)
	return e.run(ctx, "export", doc, func(log *slog.Logger, res *Result) error {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &Error{Op: "prepare", Err: errors.Wrapf(err, "create %s", dir)}
		}
		tmp, err := os.CreateTemp(dir, ".resume-*.pdf")
		if err != nil {
			return &Error{Op: "prepare", Err: errors.Wrap(err, "create temp file")}
		}
		tmpName := tmp.Name()
		if err := e.render(doc, tmp, res); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return err
		}
		if err := tmp.Close(); err != nil {
			os.Remove(tmpName)
			return &Error{Op: "write", Err: errors.Wrap(err, "close temp file")}
		}
		if err := os.Rename(tmpName, path); err != nil {
			os.Remove(tmpName)
			return &Error{Op: "write", Err: errors.Wrapf(err, "rename to %s", path)}
		}
		res.Path = path
		log.Debug("artifact written", "path", path)
		return nil
	})
}

// Write renders the document to w.
func (e *Exporter) Write(ctx context.Context, doc *cvdash.Document, w io.Writer) (Result, error) {
	return e.run(ctx, "write", doc, func(_ *slog.Logger, res *Result) error {
		return e.render(doc, w, res)
	})
}

func (e *Exporter) run(ctx context.Context, op string, doc *cvdash.Document, fn func(*slog.Logger, *Result) error) (Result, error) {
	if doc == nil {
		return Result{}, &Error{Op: "start", Err: errors.New("document is nil")}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, &Error{Op: "start", Err: err}
	}
	if !e.gate.TryAcquire(1) {
		return Result{}, ErrInProgress
	}
	defer e.gate.Release(1)

	res := Result{RunID: uuid.NewString()}
	log := e.log.With("run_id", res.RunID, "op", op)
	start := time.Now()
	log.Info("export started", "name", doc.Name)
	if err := fn(log, &res); err != nil {
		log.Error("export failed", "error", err, "duration", time.Since(start))
		return Result{RunID: res.RunID}, err
	}
	log.Info("export finished", "pages", res.Pages, "bytes", res.Bytes, "duration", time.Since(start))
	return res, nil
}

func (e *Exporter) render(doc *cvdash.Document, w io.Writer, res *Result) error {
	cw := &countingWriter{w: w}
	report, err := pdf.Render(pdf.RenderRequest{Document: doc, Writer: cw, Config: e.cfg})
	if err != nil {
		return &Error{Op: "render", Err: err}
	}
	res.Pages = report.Pages
	res.Bytes = cw.n
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
