package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errDB = errors.New("connection refused")

func TestListMembers_FetchErrorYieldsEmptyData(t *testing.T) {
	repo := new(mockMemberRepo)
	repo.On("List", mock.Anything).Return(nil, errDB)

	res := NewMemberService(repo, nil).ListMembers(context.Background())

	assert.False(t, res.OK())
	assert.ErrorIs(t, res.Err, errDB)
	require.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestListMembers_EmptyIsNotAFailure(t *testing.T) {
	repo := new(mockMemberRepo)
	repo.On("List", mock.Anything).Return(nil, nil)

	res := NewMemberService(repo, nil).ListMembers(context.Background())

	assert.True(t, res.OK())
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestListMembers_CachedAndInvalidated(t *testing.T) {
	ctx := context.Background()
	repo := new(mockMemberRepo)
	repo.On("List", mock.Anything).Return([]*domain.FamilyMember{{ID: "1", Name: "Ann"}}, nil)
	svc := NewMemberService(repo, cache.NewMemoryService())

	first := svc.ListMembers(ctx)
	second := svc.ListMembers(ctx)
	require.True(t, second.OK())
	assert.Equal(t, first.Data[0].Name, second.Data[0].Name)
	repo.AssertNumberOfCalls(t, "List", 1)

	name := "Anna"
	repo.On("Update", mock.Anything, "1", mock.Anything).Return(&domain.FamilyMember{ID: "1", Name: name}, nil)
	_, err := svc.UpdateMember(ctx, "1", domain.MemberUpdate{Name: &name})
	require.NoError(t, err)

	svc.ListMembers(ctx)
	repo.AssertNumberOfCalls(t, "List", 2)
}

func TestUpdateMember_BlankNameRejected(t *testing.T) {
	repo := new(mockMemberRepo)
	blank := "  "

	_, err := NewMemberService(repo, nil).UpdateMember(context.Background(), "1", domain.MemberUpdate{Name: &blank})

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateMember_EmptyUpdateSkipsWrite(t *testing.T) {
	ctx := context.Background()
	repo := new(mockMemberRepo)
	repo.On("List", mock.Anything).Return([]*domain.FamilyMember{{ID: "1", Name: "Ann"}}, nil)
	repo.On("FindByID", mock.Anything, "1").Return(&domain.FamilyMember{ID: "1", Name: "Ann"}, nil)
	svc := NewMemberService(repo, cache.NewMemoryService())
	svc.ListMembers(ctx)

	member, err := svc.UpdateMember(ctx, "1", domain.MemberUpdate{})

	require.NoError(t, err)
	assert.Equal(t, "Ann", member.Name)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	svc.ListMembers(ctx)
	repo.AssertNumberOfCalls(t, "List", 1)
}

func TestMembersByIDs_SkipsUnknown(t *testing.T) {
	repo := new(mockMemberRepo)
	repo.On("FindByIDs", mock.Anything, []string{"1", "ghost"}).Return([]*domain.FamilyMember{{ID: "1"}}, nil)

	res := NewMemberService(repo, nil).MembersByIDs(context.Background(), []string{"1", "ghost"})

	require.True(t, res.OK())
	require.Len(t, res.Data, 1)
	assert.Equal(t, "1", res.Data[0].ID)
}

func TestGetMember_NotFoundIsDistinct(t *testing.T) {
	repo := new(mockMemberRepo)
	repo.On("FindByID", mock.Anything, "x").Return(nil, common.ErrMemberNotFound)

	res := NewMemberService(repo, nil).GetMember(context.Background(), "x")

	assert.ErrorIs(t, res.Err, common.ErrMemberNotFound)
	assert.Nil(t, res.Data)
}

func TestCreateEvent_ValidatesEventType(t *testing.T) {
	repo := new(mockEventRepo)
	svc := NewEventService(repo)
	party := "party"

	_, err := svc.CreateEvent(context.Background(), &CreateEventRequest{
		Title:     "Gathering",
		EventDate: time.Now(),
		EventType: &party,
	})

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateEvent_Success(t *testing.T) {
	repo := new(mockEventRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.FamilyEvent")).Return(nil)
	birthday := "birthday"

	event, err := NewEventService(repo).CreateEvent(context.Background(), &CreateEventRequest{
		Title:     "  Grandma's 80th ",
		EventDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EventType: &birthday,
	})

	require.NoError(t, err)
	assert.Equal(t, "Grandma's 80th", event.Title)
	require.NotNil(t, event.EventType)
	assert.Equal(t, domain.EventTypeBirthday, *event.EventType)
	assert.NotNil(t, event.Attendees)
}

func TestPartitionEvents_UsesClock(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := new(mockEventRepo)
	repo.On("List", mock.Anything).Return([]*domain.FamilyEvent{
		{ID: "past", EventDate: now.AddDate(0, -1, 0)},
		{ID: "soon", EventDate: now.AddDate(0, 0, 3)},
	}, nil)

	svc := NewEventService(repo).(*eventService)
	svc.now = func() time.Time { return now }
	res := svc.PartitionEvents(context.Background())

	require.True(t, res.OK())
	require.Len(t, res.Data.Upcoming, 1)
	assert.Equal(t, "soon", res.Data.Upcoming[0].ID)
	require.Len(t, res.Data.Past, 1)
}

func TestListPhotosForEvent_NoReferences(t *testing.T) {
	repo := new(mockPhotoRepo)

	res := NewPhotoService(repo).ListPhotosForEvent(context.Background(), &domain.FamilyEvent{})

	assert.True(t, res.OK())
	assert.Empty(t, res.Data)
	repo.AssertNotCalled(t, "ListByIDs", mock.Anything, mock.Anything)
}

func TestListPhotos_FetchError(t *testing.T) {
	repo := new(mockPhotoRepo)
	repo.On("List", mock.Anything).Return(nil, errDB)

	res := NewPhotoService(repo).ListPhotos(context.Background())

	assert.Error(t, res.Err)
	assert.Equal(t, []*domain.FamilyPhoto{}, res.Data)
}

func TestListWithCounts(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("List", mock.Anything).Return([]*domain.PhotoCategory{{ID: "c1", Name: "holidays"}, {ID: "c2", Name: "vacations"}}, nil)
	repo.On("CountPhotos", mock.Anything).Return(map[string]int64{"c1": 3}, nil)

	res := NewCategoryService(repo, nil).ListWithCounts(context.Background())

	require.True(t, res.OK())
	require.Len(t, res.Data, 2)
	assert.Equal(t, int64(3), res.Data[0].PhotoCount)
	assert.Equal(t, int64(0), res.Data[1].PhotoCount)
}

func TestMemoryService(t *testing.T) {
	ctx := context.Background()
	repo := new(mockMemoryRepo)
	svc := NewMemoryService(repo)

	_, err := svc.CreateMemory(ctx, "m1", domain.MemoryFields{Title: " ", Content: "x"})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.FamilyMemory")).Return(nil)
	memory, err := svc.CreateMemory(ctx, "m1", domain.MemoryFields{Title: " Camping ", Content: "rain"})
	require.NoError(t, err)
	assert.Equal(t, "Camping", memory.Title)
	assert.Equal(t, "m1", memory.MemberID)

	repo.On("Update", mock.Anything, "gone", mock.Anything).Return(nil, common.ErrMemoryNotFound)
	_, err = svc.UpdateMemory(ctx, "gone", domain.MemoryFields{Title: "a", Content: "b"})
	assert.ErrorIs(t, err, common.ErrMemoryNotFound)

	repo.On("Delete", mock.Anything, "gone").Return(false, nil)
	ok, err := svc.DeleteMemory(ctx, "gone")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreatePost_DefaultsSlices(t *testing.T) {
	repo := new(mockPostRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.FamilyPost")).Return(nil)

	post, err := NewPostService(repo).CreatePost(context.Background(), &domain.FamilyPost{Title: "News", Content: "Baby!"})

	require.NoError(t, err)
	assert.NotNil(t, post.Images)
	assert.NotNil(t, post.Tags)
}
