package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkt.systems/cvdash"
	"pkt.systems/cvdash/internal/pdfcheck"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleDoc(t *testing.T) *cvdash.Document {
	t.Helper()
	src, err := pdfcheck.SampleDocument()
	require.NoError(t, err)
	raw, err := os.ReadFile(src)
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, pdfcheck.WritePNG(filepath.Join(dir, "photo.png"), 32, 32))
	path := filepath.Join(dir, "cv_data.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	doc, err := cvdash.Load(path)
	require.NoError(t, err)
	return doc
}

func TestExportWritesResumePDF(t *testing.T) {
	doc := sampleDoc(t)
	out := filepath.Join(t.TempDir(), "out")
	e := New(WithLogger(quietLogger()))

	res, err := e.Export(context.Background(), doc, out)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, FileName), res.Path)
	assert.NotEmpty(t, res.RunID)

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), res.Bytes)
	pages, err := pdfcheck.PageCount(data)
	require.NoError(t, err)
	assert.Equal(t, res.Pages, pages)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestExportFailureKeepsPreviousArtifact(t *testing.T) {
	out := t.TempDir()
	prev := []byte("previous")
	require.NoError(t, os.WriteFile(filepath.Join(out, FileName), prev, 0o644))

	doc, err := cvdash.Parse([]byte(`{"name":"Jo","title":"Eng","location":"Oslo","photo":{"path":"gone.png"}}`), t.TempDir())
	require.NoError(t, err)

	_, err = New(WithLogger(quietLogger())).Export(context.Background(), doc, out)
	var exportErr *Error
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, "render", exportErr.Op)

	data, err := os.ReadFile(filepath.Join(out, FileName))
	require.NoError(t, err)
	assert.Equal(t, prev, data)
	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestExportChecksContextBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(WithLogger(quietLogger())).Export(ctx, sampleDoc(t), t.TempDir())
	require.ErrorIs(t, err, context.Canceled)
}

// blockingWriter holds the first write until released.
type blockingWriter struct {
	started chan struct{}
	release chan struct{}
	buf     bytes.Buffer
	once    bool
}

func (b *blockingWriter) Write(p []byte) (int, error) {
	if !b.once {
		b.once = true
		close(b.started)
		<-b.release
	}
	return b.buf.Write(p)
}

func TestSecondExportWhileRunningFails(t *testing.T) {
	doc := sampleDoc(t)
	e := New(WithLogger(quietLogger()))
	bw := &blockingWriter{started: make(chan struct{}), release: make(chan struct{})}

	done := make(chan error, 1)
	go func() {
		_, err := e.Write(context.Background(), doc, bw)
		done <- err
	}()
	<-bw.started

	_, err := e.Export(context.Background(), doc, t.TempDir())
	assert.True(t, errors.Is(err, ErrInProgress), "got %v", err)
	_, err = e.Write(context.Background(), doc, io.Discard)
	assert.ErrorIs(t, err, ErrInProgress)

	close(bw.release)
	require.NoError(t, <-done)

	_, err = e.Write(context.Background(), doc, io.Discard)
	require.NoError(t, err, "gate must be released after a run")
}

func TestWriteRejectsNilDocument(t *testing.T) {
	_, err := New(WithLogger(quietLogger())).Write(context.Background(), nil, io.Discard)
	var exportErr *Error
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, "start", exportErr.Op)
}
