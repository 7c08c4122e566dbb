package service

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/familyalbum/album-backend/internal/domain"
	pkglogger "github.com/familyalbum/album-backend/pkg/logger"
	"github.com/familyalbum/album-backend/pkg/storage"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	pkglogger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// --- Mock MemberRepository ---

type mockMemberRepo struct {
	mock.Mock
}

func (m *mockMemberRepo) List(ctx context.Context) ([]*domain.FamilyMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FamilyMember), args.Error(1)
}

func (m *mockMemberRepo) FindByID(ctx context.Context, id string) (*domain.FamilyMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FamilyMember), args.Error(1)
}

func (m *mockMemberRepo) FindByIDs(ctx context.Context, ids []string) ([]*domain.FamilyMember, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FamilyMember), args.Error(1)
}

func (m *mockMemberRepo) Create(ctx context.Context, member *domain.FamilyMember) error {
	return m.Called(ctx, member).Error(0)
}

func (m *mockMemberRepo) Update(ctx context.Context, id string, upd domain.MemberUpdate) (*domain.FamilyMember, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FamilyMember), args.Error(1)
}

// --- Mock EventRepository ---

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) List(ctx context.Context) ([]*domain.FamilyEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FamilyEvent), args.Error(1)
}

func (m *mockEventRepo) FindByID(ctx context.Context, id string) (*domain.FamilyEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FamilyEvent), args.Error(1)
}

func (m *mockEventRepo) Create(ctx context.Context, event *domain.FamilyEvent) error {
	return m.Called(ctx, event).Error(0)
}

// --- Mock PhotoRepository ---

type mockPhotoRepo struct {
	mock.Mock
}

func (m *mockPhotoRepo) List(ctx context.Context) ([]*domain.FamilyPhoto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FamilyPhoto), args.Error(1)
}

func (m *mockPhotoRepo) FindByID(ctx context.Context, id string) (*domain.FamilyPhoto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FamilyPhoto), args.Error(1)
}

func (m *mockPhotoRepo) ListByIDs(ctx context.Context, ids []string) ([]*domain.FamilyPhoto, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FamilyPhoto), args.Error(1)
}

func (m *mockPhotoRepo) ListForMember(ctx context.Context, memberID string) ([]*domain.FamilyPhoto, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FamilyPhoto), args.Error(1)
}

func (m *mockPhotoRepo) Create(ctx context.Context, photo *domain.FamilyPhoto, memberIDs []string) error {
	return m.Called(ctx, photo, memberIDs).Error(0)
}

// --- Mock CategoryRepository ---

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]*domain.PhotoCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PhotoCategory), args.Error(1)
}

func (m *mockCategoryRepo) CountPhotos(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// --- Mock MemoryRepository ---

type mockMemoryRepo struct {
	mock.Mock
}

func (m *mockMemoryRepo) ListForMember(ctx context.Context, memberID string) ([]*domain.FamilyMemory, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FamilyMemory), args.Error(1)
}

func (m *mockMemoryRepo) FindByID(ctx context.Context, id string) (*domain.FamilyMemory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FamilyMemory), args.Error(1)
}

func (m *mockMemoryRepo) Create(ctx context.Context, memory *domain.FamilyMemory) error {
	return m.Called(ctx, memory).Error(0)
}

func (m *mockMemoryRepo) Update(ctx context.Context, id string, fields domain.MemoryFields) (*domain.FamilyMemory, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FamilyMemory), args.Error(1)
}

func (m *mockMemoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- Mock PostRepository ---

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) List(ctx context.Context, limit int) ([]*domain.FamilyPost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FamilyPost), args.Error(1)
}

func (m *mockPostRepo) Create(ctx context.Context, post *domain.FamilyPost) error {
	return m.Called(ctx, post).Error(0)
}

// --- Mock ObjectStore ---

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Upload(ctx context.Context, key string, body io.Reader, contentType string, size int64) (*storage.UploadResult, error) {
	args := m.Called(ctx, key, body, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UploadResult), args.Error(1)
}

func (m *mockStore) PublicURL(key string) string {
	return m.Called(key).String(0)
}
