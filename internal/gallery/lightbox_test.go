package gallery

import (
	"testing"

	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func view(n int) []*domain.FamilyPhoto {
	out := make([]*domain.FamilyPhoto, n)
	for i := range out {
		out[i] = &domain.FamilyPhoto{ID: string(rune('a' + i)), Title: "p"}
	}
	return out
}

func TestLightbox_SelectComputesIndex(t *testing.T) {
	lb := NewLightbox(view(3))
	require.NoError(t, lb.Select("b"))

	p, i, ok := lb.Current()
	require.True(t, ok)
	assert.Equal(t, "b", p.ID)
	assert.Equal(t, 1, i)
	assert.Equal(t, "2 of 3", lb.Position())
}

func TestLightbox_SelectMissingLeavesStateUnchanged(t *testing.T) {
	lb := NewLightbox(view(3))
	require.NoError(t, lb.Select("c"))

	assert.ErrorIs(t, lb.Select("zz"), ErrPhotoNotInView)
	_, i, ok := lb.Current()
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	assert.ErrorIs(t, NewLightbox(nil).Select("a"), ErrEmptyView)
}

func TestLightbox_WrapAround(t *testing.T) {
	lb := NewLightbox(view(3))
	require.NoError(t, lb.Select("c"))

	p, err := lb.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", p.ID)

	p, err = lb.Prev()
	require.NoError(t, err)
	assert.Equal(t, "c", p.ID)
}

func TestLightbox_NTimesReturnsToStart(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for start := 0; start < n; start++ {
			photos := view(n)
			lb := NewLightbox(photos)
			require.NoError(t, lb.Select(photos[start].ID))

			for k := 0; k < n; k++ {
				_, err := lb.Next()
				require.NoError(t, err)
				_, i, _ := lb.Current()
				assert.True(t, i >= 0 && i < n)
			}
			_, i, _ := lb.Current()
			assert.Equal(t, start, i, "next x%d from %d", n, start)

			for k := 0; k < n; k++ {
				_, err := lb.Prev()
				require.NoError(t, err)
			}
			_, i, _ = lb.Current()
			assert.Equal(t, start, i, "prev x%d from %d", n, start)
		}
	}
}

func TestLightbox_ClosedNavigation(t *testing.T) {
	lb := NewLightbox(view(2))
	_, err := lb.Next()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = lb.Prev()
	assert.ErrorIs(t, err, ErrClosed)

	require.NoError(t, lb.Select("a"))
	lb.Close()
	assert.False(t, lb.IsOpen())
	assert.Equal(t, "", lb.Position())
}

func TestLightbox_SetView(t *testing.T) {
	photos := view(4)
	lb := NewLightbox(photos)
	require.NoError(t, lb.Select("c"))

	lb.SetView([]*domain.FamilyPhoto{photos[2], photos[3]})
	p, i, ok := lb.Current()
	require.True(t, ok)
	assert.Equal(t, "c", p.ID)
	assert.Equal(t, 0, i)

	lb.SetView([]*domain.FamilyPhoto{photos[0]})
	assert.False(t, lb.IsOpen())
}

func TestLightbox_SnapshotRestore(t *testing.T) {
	photos := view(3)
	lb := NewLightbox(photos)
	require.NoError(t, lb.Select("b"))
	snap := lb.Snapshot()

	restored := NewLightbox(photos[1:])
	restored.Restore(snap)
	_, i, ok := restored.Current()
	require.True(t, ok)
	assert.Equal(t, 0, i)

	gone := NewLightbox(photos[2:])
	gone.Restore(snap)
	assert.False(t, gone.IsOpen())
}

func TestLightbox_Keys(t *testing.T) {
	lb := NewLightbox(view(3))
	assert.False(t, lb.HandleKey(KeyArrowRight), "closed lightbox ignores keys")

	require.NoError(t, lb.Select("a"))
	assert.True(t, lb.HandleKey(KeyArrowLeft))
	p, _, _ := lb.Current()
	assert.Equal(t, "c", p.ID)

	assert.True(t, lb.HandleKey(KeyArrowRight))
	p, _, _ = lb.Current()
	assert.Equal(t, "a", p.ID)

	assert.False(t, lb.HandleKey("Enter"))
	assert.True(t, lb.HandleKey(KeyEscape))
	assert.False(t, lb.IsOpen())
}

func TestLightbox_MountIsScoped(t *testing.T) {
	bus := NewKeyboardBus()
	lb := NewLightbox(view(3))
	require.NoError(t, lb.Select("a"))

	for round := 0; round < 5; round++ {
		release := lb.Mount(bus)
		lb.Mount(bus)
		assert.Equal(t, 1, bus.Listeners(), "repeated mounts do not accumulate listeners")

		release()
		release()
		assert.Equal(t, 0, bus.Listeners())
	}

	release := lb.Mount(bus)
	bus.Dispatch(KeyArrowRight)
	_, i, _ := lb.Current()
	assert.Equal(t, 1, i, "one listener means one step per key")
	release()

	bus.Dispatch(KeyArrowRight)
	_, i, _ = lb.Current()
	assert.Equal(t, 1, i, "released listener no longer receives keys")
}
