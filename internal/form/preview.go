package form

import (
	"context"
	"encoding/base64"
	"sync"
)

// Preview is a data URL rendered in the background from a selected file
type Preview struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu  sync.Mutex
	url string
	err error
}

func startPreview(file *File) *Preview {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Preview{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(p.done)
		url, err := encodeDataURL(ctx, file)

		p.mu.Lock()
		p.url, p.err = url, err
		p.mu.Unlock()
	}()
	return p
}

// encodeDataURL base64-encodes the file in chunks so cancellation is observed
func encodeDataURL(ctx context.Context, file *File) (string, error) {
	const chunk = 48 * 1024 // multiple of 3, no padding between chunks

	buf := make([]byte, 0, base64.StdEncoding.EncodedLen(len(file.Data)))
	for off := 0; off < len(file.Data); off += chunk {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		end := off + chunk
		if end > len(file.Data) {
			end = len(file.Data)
		}
		buf = base64.StdEncoding.AppendEncode(buf, file.Data[off:end])
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "data:" + file.ContentType + ";base64," + string(buf), nil
}

// Wait blocks until the preview is ready, released, or ctx is done
func (p *Preview) Wait(ctx context.Context) (string, error) {
	select {
	case <-p.done:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.url, p.err
}

// Release cancels rendering and drops the URL
func (p *Preview) Release() {
	p.cancel()
	<-p.done
	p.mu.Lock()
	p.url = ""
	if p.err == nil {
		p.err = context.Canceled
	}
	p.mu.Unlock()
}
