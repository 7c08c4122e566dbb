package gallery

import (
	"context"
	"errors"
	"fmt"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/pkg/cache"
)

// PhotoLister is the read the viewer needs
type PhotoLister interface {
	ListPhotos(ctx context.Context) common.Result[[]*domain.FamilyPhoto]
}

// sessionState is what is stored per user
type sessionState struct {
	Criteria Criteria `json:"criteria"`
	Snapshot Snapshot `json:"snapshot"`
}

// View is the viewer state returned to clients
type View struct {
	Open     bool                `json:"open"`
	Photo    *domain.FamilyPhoto `json:"photo,omitempty"`
	Index    int                 `json:"index"`
	Total    int                 `json:"total"`
	Position string              `json:"position,omitempty"`
	Criteria Criteria            `json:"criteria"`
}

// Sessions keeps one lightbox per user in the cache so it survives across requests
type Sessions struct {
	cache  cache.Service
	photos PhotoLister
}

// NewSessions creates a session store
func NewSessions(c cache.Service, photos PhotoLister) *Sessions {
	return &Sessions{cache: c, photos: photos}
}

func sessionKey(userID string) string {
	return cache.PrefixViewer + userID
}

// load rebuilds a lightbox against the current photo list
func (s *Sessions) load(ctx context.Context, c Criteria) (*Lightbox, error) {
	res := s.photos.ListPhotos(ctx)
	if !res.OK() {
		return nil, fmt.Errorf("load photos: %w", res.Err)
	}
	return NewLightbox(Filter(res.Data, c)), nil
}

func (s *Sessions) state(ctx context.Context, userID string) (*sessionState, error) {
	var st sessionState
	if err := s.cache.Get(ctx, sessionKey(userID), &st); err != nil {
		if errors.Is(err, cache.ErrMiss) {
			return nil, ErrClosed
		}
		return nil, err
	}
	return &st, nil
}

func (s *Sessions) save(ctx context.Context, userID string, c Criteria, lb *Lightbox) (*View, error) {
	st := sessionState{Criteria: c, Snapshot: lb.Snapshot()}
	if !st.Snapshot.Open {
		if err := s.cache.Delete(ctx, sessionKey(userID)); err != nil {
			return nil, err
		}
	} else if err := s.cache.Set(ctx, sessionKey(userID), st, cache.TTLViewer); err != nil {
		return nil, err
	}
	return render(lb, c), nil
}

func render(lb *Lightbox, c Criteria) *View {
	v := &View{Total: lb.Len(), Criteria: c}
	if photo, i, ok := lb.Current(); ok {
		v.Open = true
		v.Photo = photo
		v.Index = i
		v.Position = lb.Position()
	}
	return v
}

// Open opens the viewer on photoID within the photos that pass c
func (s *Sessions) Open(ctx context.Context, userID, photoID string, c Criteria) (*View, error) {
	lb, err := s.load(ctx, c)
	if err != nil {
		return nil, err
	}
	if err := lb.Select(photoID); err != nil {
		return nil, err
	}
	return s.save(ctx, userID, c, lb)
}

// resume restores the stored session; a photo that left the view closes it
func (s *Sessions) resume(ctx context.Context, userID string) (*Lightbox, Criteria, error) {
	st, err := s.state(ctx, userID)
	if err != nil {
		return nil, Criteria{}, err
	}
	lb, err := s.load(ctx, st.Criteria)
	if err != nil {
		return nil, Criteria{}, err
	}
	lb.Restore(st.Snapshot)
	return lb, st.Criteria, nil
}

// Get returns the current viewer state. A user without a session gets a closed view.
func (s *Sessions) Get(ctx context.Context, userID string) (*View, error) {
	lb, c, err := s.resume(ctx, userID)
	if errors.Is(err, ErrClosed) {
		return &View{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.save(ctx, userID, c, lb)
}

// Next advances the viewer
func (s *Sessions) Next(ctx context.Context, userID string) (*View, error) {
	return s.apply(ctx, userID, func(lb *Lightbox) error {
		_, err := lb.Next()
		return err
	})
}

// Prev moves the viewer back
func (s *Sessions) Prev(ctx context.Context, userID string) (*View, error) {
	return s.apply(ctx, userID, func(lb *Lightbox) error {
		_, err := lb.Prev()
		return err
	})
}

// Key feeds a key press through a mounted keyboard listener
func (s *Sessions) Key(ctx context.Context, userID string, key Key) (*View, error) {
	return s.apply(ctx, userID, func(lb *Lightbox) error {
		bus := NewKeyboardBus()
		release := lb.Mount(bus)
		defer release()
		bus.Dispatch(key)
		return nil
	})
}

// Close ends the session
func (s *Sessions) Close(ctx context.Context, userID string) error {
	return s.cache.Delete(ctx, sessionKey(userID))
}

func (s *Sessions) apply(ctx context.Context, userID string, fn func(*Lightbox) error) (*View, error) {
	lb, c, err := s.resume(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := fn(lb); err != nil {
		if errors.Is(err, ErrClosed) {
			_ = s.Close(ctx, userID)
		}
		return nil, err
	}
	return s.save(ctx, userID, c, lb)
}
