package viewmodel

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReaders struct {
	photoCalls  int
	memoryCalls int
	photosErr   error
}

func (f *fakeReaders) GetMember(_ context.Context, id string) common.Result[*domain.FamilyMember] {
	if id != "m1" {
		return common.Single[domain.FamilyMember](nil, common.ErrMemberNotFound)
	}
	return common.Single(&domain.FamilyMember{ID: "m1", Name: "Ann"}, nil)
}

func (f *fakeReaders) ListPhotosForMember(context.Context, string) common.Result[[]*domain.FamilyPhoto] {
	f.photoCalls++
	return common.Collection([]*domain.FamilyPhoto{{ID: "p1"}}, f.photosErr)
}

func (f *fakeReaders) ListForMember(context.Context, string) common.Result[[]*domain.FamilyMemory] {
	f.memoryCalls++
	return common.Collection([]*domain.FamilyMemory{{ID: "x"}}, nil)
}

func (f *fakeReaders) GetEvent(_ context.Context, id string) common.Result[*domain.FamilyEvent] {
	if id != "e1" {
		return common.Single[domain.FamilyEvent](nil, common.ErrEventNotFound)
	}
	return common.Single(&domain.FamilyEvent{ID: "e1", Photos: []string{"p1"}}, nil)
}

func (f *fakeReaders) ListPhotosForEvent(context.Context, *domain.FamilyEvent) common.Result[[]*domain.FamilyPhoto] {
	f.photoCalls++
	return common.Collection([]*domain.FamilyPhoto{{ID: "p1"}}, f.photosErr)
}

func TestTabState(t *testing.T) {
	s := NewTabState(MemberTabs)
	assert.Equal(t, TabAbout, s.Active())

	require.NoError(t, s.Select("memories"))
	assert.Equal(t, TabMemories, s.Active())

	assert.ErrorIs(t, s.Select("details"), ErrUnknownTab)
	assert.Equal(t, TabMemories, s.Active(), "unknown tab keeps the current one")

	require.NoError(t, s.Select(""))
	assert.Equal(t, TabAbout, s.Active())
}

func TestMemberProfile_DefaultTabLoadsNothingExtra(t *testing.T) {
	f := &fakeReaders{}
	page, err := NewMemberProfileBuilder(f, f, f).Build(context.Background(), "m1", "")

	require.NoError(t, err)
	assert.Equal(t, TabAbout, page.ActiveTab)
	assert.Equal(t, MemberTabs, page.Tabs)
	assert.Zero(t, f.photoCalls)
	assert.Zero(t, f.memoryCalls)
}

func TestMemberProfile_EachBuildStartsAtDefault(t *testing.T) {
	f := &fakeReaders{}
	b := NewMemberProfileBuilder(f, f, f)

	page, err := b.Build(context.Background(), "m1", "memories")
	require.NoError(t, err)
	assert.Len(t, page.Memories, 1)

	page, err = b.Build(context.Background(), "m1", "")
	require.NoError(t, err)
	assert.Equal(t, TabAbout, page.ActiveTab)
}

func TestMemberProfile_Errors(t *testing.T) {
	f := &fakeReaders{photosErr: errors.New("db down")}
	b := NewMemberProfileBuilder(f, f, f)

	_, err := b.Build(context.Background(), "m1", "bogus")
	assert.ErrorIs(t, err, ErrUnknownTab)

	_, err = b.Build(context.Background(), "nope", "")
	assert.ErrorIs(t, err, common.ErrMemberNotFound)

	page, err := b.Build(context.Background(), "m1", "photos")
	require.NoError(t, err)
	assert.Error(t, page.LoadErr)
	assert.NotNil(t, page.Photos)
	assert.Empty(t, page.Photos)
}

func TestEventDetail(t *testing.T) {
	f := &fakeReaders{}
	b := NewEventDetailBuilder(f, f)

	page, err := b.Build(context.Background(), "e1", "")
	require.NoError(t, err)
	assert.Equal(t, TabDetails, page.ActiveTab)
	assert.Zero(t, f.photoCalls)

	page, err = b.Build(context.Background(), "e1", "photos")
	require.NoError(t, err)
	assert.Len(t, page.Photos, 1)

	_, err = b.Build(context.Background(), "e1", "memories")
	assert.ErrorIs(t, err, ErrUnknownTab)

	_, err = b.Build(context.Background(), "e2", "")
	assert.ErrorIs(t, err, common.ErrEventNotFound)
}

func TestPageJSON_ActiveTabCollectionAlwaysPresent(t *testing.T) {
	raw, err := json.Marshal(MemberProfile{ActiveTab: TabPhotos})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"photos":[]`)
	assert.NotContains(t, string(raw), `"memories"`)

	raw, err = json.Marshal(&MemberProfile{ActiveTab: TabAbout, Photos: []*domain.FamilyPhoto{{ID: "p1"}}})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"photos"`)

	raw, err = json.Marshal(EventDetail{ActiveTab: TabPhotos})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"photos":[]`)

	raw, err = json.Marshal(EventDetail{ActiveTab: TabDetails})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"photos"`)

	var back MemberProfile
	raw, err = json.Marshal(MemberProfile{ActiveTab: TabMemories, Memories: []*domain.FamilyMemory{{ID: "x"}}})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &back))
	require.Len(t, back.Memories, 1)
	assert.Equal(t, TabMemories, back.ActiveTab)
}
