package gallery

import (
	"context"
	"errors"
	"testing"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	photos []*domain.FamilyPhoto
	err    error
}

func (s *stubLister) ListPhotos(context.Context) common.Result[[]*domain.FamilyPhoto] {
	return common.Collection(s.photos, s.err)
}

func TestSessions_OpenNavigateClose(t *testing.T) {
	ctx := context.Background()
	lister := &stubLister{photos: samplePhotos()}
	s := NewSessions(cache.NewMemoryService(), lister)

	v, err := s.Open(ctx, "u1", "4", Criteria{Category: "trips"})
	require.NoError(t, err)
	assert.True(t, v.Open)
	assert.Equal(t, "2 of 2", v.Position)

	v, err = s.Next(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "2", v.Photo.ID)

	v, err = s.Key(ctx, "u1", KeyArrowLeft)
	require.NoError(t, err)
	assert.Equal(t, "4", v.Photo.ID)

	v, err = s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "4", v.Photo.ID)

	v, err = s.Key(ctx, "u1", KeyEscape)
	require.NoError(t, err)
	assert.False(t, v.Open)

	_, err = s.Next(ctx, "u1")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestSessions_OpenOutsideFilter(t *testing.T) {
	s := NewSessions(cache.NewMemoryService(), &stubLister{photos: samplePhotos()})

	_, err := s.Open(context.Background(), "u1", "3", Criteria{Category: "trips"})
	assert.ErrorIs(t, err, ErrPhotoNotInView)
}

func TestSessions_PhotoRemovedClosesSession(t *testing.T) {
	ctx := context.Background()
	lister := &stubLister{photos: samplePhotos()}
	s := NewSessions(cache.NewMemoryService(), lister)

	_, err := s.Open(ctx, "u1", "1", Criteria{})
	require.NoError(t, err)

	lister.photos = lister.photos[1:]
	v, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, v.Open)
}

func TestSessions_FetchFailure(t *testing.T) {
	s := NewSessions(cache.NewMemoryService(), &stubLister{err: errors.New("db down")})

	_, err := s.Open(context.Background(), "u1", "1", Criteria{})
	assert.Error(t, err)

	v, err := s.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, v.Open)
}
