// Package form implements the upload and edit form flows: file selection with an
// asynchronous preview, a single in-flight submission, and a notice for every outcome.
package form

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/familyalbum/album-backend/internal/notify"
	"github.com/familyalbum/album-backend/internal/service"
)

var (
	ErrNoFileSelected = errors.New("no file selected")
	ErrNotImage       = errors.New("file is not an image")
	ErrSubmitInFlight = errors.New("a submission is already in progress")
)

// File is a file picked by the user
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// detectType fills in a missing content type by sniffing the data
func (f *File) detectType() string {
	if f.ContentType == "" && len(f.Data) > 0 {
		f.ContentType = http.DetectContentType(f.Data)
	}
	return f.ContentType
}

// IsImage reports whether the file has an image MIME type
func (f *File) IsImage() bool {
	return strings.HasPrefix(f.detectType(), "image/")
}

func (f *File) input() service.FileInput {
	return service.FileInput{
		Body:        bytes.NewReader(f.Data),
		Filename:    f.Name,
		ContentType: f.ContentType,
		Size:        int64(len(f.Data)),
	}
}

// fileField holds the selected file and its preview. Selecting a new file or
// clearing the field cancels and releases the previous preview.
type fileField struct {
	mu      sync.Mutex
	file    *File
	preview *Preview
}

func (f *fileField) selectFile(file *File) error {
	if file == nil {
		f.clear()
		return nil
	}
	if !file.IsImage() {
		return ErrNotImage
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.preview != nil {
		f.preview.Release()
	}
	f.file = file
	f.preview = startPreview(file)
	return nil
}

func (f *fileField) clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.preview != nil {
		f.preview.Release()
	}
	f.file = nil
	f.preview = nil
}

func (f *fileField) current() (*File, *Preview) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.file, f.preview
}

// inFlight admits one submission at a time
type inFlight struct {
	busy atomic.Bool
}

func (g *inFlight) begin() bool { return g.busy.CompareAndSwap(false, true) }

func (g *inFlight) end() { g.busy.Store(false) }

// Submitting reports whether a submission is running
func (g *inFlight) Submitting() bool { return g.busy.Load() }

// outcome describes the notices of one submission
type outcome struct {
	successKey   string
	failureTitle string
	failureKey   string
}

// run executes write under the in-flight guard and reports the result to sink
func run(ctx context.Context, g *inFlight, sink notify.Sink, o outcome, write func(context.Context) error) error {
	if !g.begin() {
		return ErrSubmitInFlight
	}
	defer g.end()

	if sink == nil {
		sink = notify.Discard
	}
	if err := write(ctx); err != nil {
		sink.Notify(notify.Failure(o.failureTitle, o.failureKey))
		return err
	}
	sink.Notify(notify.Success(o.successKey))
	return nil
}
