package service

import (
	"context"
	"fmt"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/internal/repository"
)

// PhotoService family photo read/write logic
type PhotoService interface {
	ListPhotos(ctx context.Context) common.Result[[]*domain.FamilyPhoto]
	GetPhoto(ctx context.Context, id string) common.Result[*domain.FamilyPhoto]
	ListPhotosForMember(ctx context.Context, memberID string) common.Result[[]*domain.FamilyPhoto]
	ListPhotosForEvent(ctx context.Context, event *domain.FamilyEvent) common.Result[[]*domain.FamilyPhoto]
	CreatePhoto(ctx context.Context, photo *domain.FamilyPhoto, memberIDs []string) (*domain.FamilyPhoto, error)
}

type photoService struct {
	repo repository.PhotoRepository
}

// NewPhotoService creates a new PhotoService
func NewPhotoService(repo repository.PhotoRepository) PhotoService {
	return &photoService{repo: repo}
}

// ListPhotos returns all photos with their category
func (s *photoService) ListPhotos(ctx context.Context) common.Result[[]*domain.FamilyPhoto] {
	photos, err := s.repo.List(ctx)
	recordFetchFailure("photos", "list", err)
	return common.Collection(photos, err)
}

// GetPhoto returns a single photo
func (s *photoService) GetPhoto(ctx context.Context, id string) common.Result[*domain.FamilyPhoto] {
	photo, err := s.repo.FindByID(ctx, id)
	recordFetchFailure("photos", "get", err)
	return common.Single(photo, err)
}

// ListPhotosForMember returns photos a member appears in
func (s *photoService) ListPhotosForMember(ctx context.Context, memberID string) common.Result[[]*domain.FamilyPhoto] {
	photos, err := s.repo.ListForMember(ctx, memberID)
	recordFetchFailure("photos", "for_member", err)
	return common.Collection(photos, err)
}

// ListPhotosForEvent resolves the photo ids an event references
func (s *photoService) ListPhotosForEvent(ctx context.Context, event *domain.FamilyEvent) common.Result[[]*domain.FamilyPhoto] {
	if event == nil || len(event.Photos) == 0 {
		return common.Collection[*domain.FamilyPhoto](nil, nil)
	}
	photos, err := s.repo.ListByIDs(ctx, event.Photos)
	recordFetchFailure("photos", "for_event", err)
	return common.Collection(photos, err)
}

// CreatePhoto inserts photo metadata and links the tagged members
func (s *photoService) CreatePhoto(ctx context.Context, photo *domain.FamilyPhoto, memberIDs []string) (*domain.FamilyPhoto, error) {
	if photo.Title == "" || photo.ImageURL == "" {
		return nil, fmt.Errorf("title and image url are required: %w", common.ErrInvalidInput)
	}
	if photo.Tags == nil {
		photo.Tags = []string{}
	}
	if err := s.repo.Create(ctx, photo, memberIDs); err != nil {
		recordWriteFailure("photos", "create", err)
		return nil, fmt.Errorf("create photo: %w", err)
	}
	return photo, nil
}
