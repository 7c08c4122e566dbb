package gallery

import (
	"errors"
	"fmt"
	"sync"

	"github.com/familyalbum/album-backend/internal/domain"
)

var (
	ErrPhotoNotInView = errors.New("photo is not in the current view")
	ErrEmptyView      = errors.New("no photos in the current view")
	ErrClosed         = errors.New("lightbox is closed")
)

// Snapshot is the persistable state of a lightbox
type Snapshot struct {
	Open    bool   `json:"open"`
	PhotoID string `json:"photo_id,omitempty"`
	Index   int    `json:"index"`
}

// Lightbox is a full-screen viewer over an ordered view of photos.
// When open, 0 <= index < len(view) and view[index].ID == photoID.
type Lightbox struct {
	mu      sync.Mutex
	view    []*domain.FamilyPhoto
	open    bool
	index   int
	photoID string

	release func()
}

// NewLightbox creates a closed lightbox over view
func NewLightbox(view []*domain.FamilyPhoto) *Lightbox {
	return &Lightbox{view: compact(view)}
}

func compact(view []*domain.FamilyPhoto) []*domain.FamilyPhoto {
	out := make([]*domain.FamilyPhoto, 0, len(view))
	for _, p := range view {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (l *Lightbox) indexOf(photoID string) int {
	for i, p := range l.view {
		if p.ID == photoID {
			return i
		}
	}
	return -1
}

// Select opens the lightbox on photoID. The state is unchanged on error.
func (l *Lightbox) Select(photoID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.view) == 0 {
		return ErrEmptyView
	}
	i := l.indexOf(photoID)
	if i < 0 {
		return ErrPhotoNotInView
	}
	l.openAt(i)
	return nil
}

func (l *Lightbox) openAt(i int) {
	l.open = true
	l.index = i
	l.photoID = l.view[i].ID
}

func (l *Lightbox) step(delta int) (*domain.FamilyPhoto, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.open {
		return nil, ErrClosed
	}
	n := len(l.view)
	l.openAt(((l.index+delta)%n + n) % n)
	return l.view[l.index], nil
}

// Next moves to the following photo, wrapping from last to first
func (l *Lightbox) Next() (*domain.FamilyPhoto, error) {
	return l.step(1)
}

// Prev moves to the previous photo, wrapping from first to last
func (l *Lightbox) Prev() (*domain.FamilyPhoto, error) {
	return l.step(-1)
}

// Close clears the selection
func (l *Lightbox) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.open = false
	l.index = 0
	l.photoID = ""
}

// SetView swaps in a new view. The open photo keeps its selection if it is still
// in the view (at its new position); otherwise the lightbox closes.
func (l *Lightbox) SetView(view []*domain.FamilyPhoto) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.view = compact(view)
	if !l.open {
		return
	}
	if i := l.indexOf(l.photoID); i >= 0 {
		l.openAt(i)
		return
	}
	l.open = false
	l.index = 0
	l.photoID = ""
}

// Current returns the open photo and its index
func (l *Lightbox) Current() (*domain.FamilyPhoto, int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.open {
		return nil, 0, false
	}
	return l.view[l.index], l.index, true
}

// IsOpen reports whether a photo is selected
func (l *Lightbox) IsOpen() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.open
}

// Len returns the size of the current view
func (l *Lightbox) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.view)
}

// Position renders "i of n" (1-based), or "" when closed
func (l *Lightbox) Position() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.open {
		return ""
	}
	return fmt.Sprintf("%d of %d", l.index+1, len(l.view))
}

// Snapshot captures the current state
func (l *Lightbox) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Snapshot{Open: l.open, PhotoID: l.photoID, Index: l.index}
}

// Restore re-applies a snapshot against the current view. A photo that has left
// the view leaves the lightbox closed.
func (l *Lightbox) Restore(s Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.open = false
	l.index = 0
	l.photoID = ""
	if !s.Open {
		return
	}
	if i := l.indexOf(s.PhotoID); i >= 0 {
		l.openAt(i)
	}
}

// HandleKey applies a key press: Escape closes, arrows navigate. Keys on a closed
// lightbox and unknown keys are ignored. Reports whether the key changed state.
func (l *Lightbox) HandleKey(key Key) bool {
	if !l.IsOpen() {
		return false
	}
	switch key {
	case KeyEscape:
		l.Close()
		return true
	case KeyArrowLeft:
		_, err := l.Prev()
		return err == nil
	case KeyArrowRight:
		_, err := l.Next()
		return err == nil
	default:
		return false
	}
}

// Mount subscribes the lightbox to src and returns the release func. Mounting an
// already mounted lightbox returns the existing release without subscribing again.
// Release is idempotent.
func (l *Lightbox) Mount(src KeySource) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.release != nil {
		return l.release
	}

	unsubscribe := src.Subscribe(func(k Key) { l.HandleKey(k) })
	var once sync.Once
	l.release = func() {
		once.Do(func() {
			unsubscribe()
			l.mu.Lock()
			l.release = nil
			l.mu.Unlock()
		})
	}
	return l.release
}
