package repository

import (
	"context"
	"errors"
	"time"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"gorm.io/gorm"
)

// PhotoRepository family photo data access interface
type PhotoRepository interface {
	List(ctx context.Context) ([]*domain.FamilyPhoto, error)
	FindByID(ctx context.Context, id string) (*domain.FamilyPhoto, error)
	ListByIDs(ctx context.Context, ids []string) ([]*domain.FamilyPhoto, error)
	ListForMember(ctx context.Context, memberID string) ([]*domain.FamilyPhoto, error)

	// Create inserts the photo and links it to memberIDs in one transaction
	Create(ctx context.Context, photo *domain.FamilyPhoto, memberIDs []string) error
}

type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository creates a new PhotoRepository
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Category")
}

// List returns all photos, newest taken date first
func (r *photoRepository) List(ctx context.Context) ([]*domain.FamilyPhoto, error) {
	var photos []*domain.FamilyPhoto
	err := r.base(ctx).
		Order("taken_date DESC").
		Order("created_at DESC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// FindByID finds photo by ID
func (r *photoRepository) FindByID(ctx context.Context, id string) (*domain.FamilyPhoto, error) {
	var photo domain.FamilyPhoto
	err := r.base(ctx).Where("id = ?", id).First(&photo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrPhotoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// ListByIDs returns the photos among ids, newest first. Unknown ids are skipped.
func (r *photoRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.FamilyPhoto, error) {
	var photos []*domain.FamilyPhoto
	if len(ids) == 0 {
		return photos, nil
	}
	err := r.base(ctx).
		Where("id IN ?", ids).
		Order("taken_date DESC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// ListForMember returns photos linked to a member through photo_members
func (r *photoRepository) ListForMember(ctx context.Context, memberID string) ([]*domain.FamilyPhoto, error) {
	var photos []*domain.FamilyPhoto
	err := r.base(ctx).
		Joins("JOIN photo_members pm ON pm.photo_id = family_photos.id").
		Where("pm.member_id = ?", memberID).
		Order("family_photos.taken_date DESC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// Create inserts the photo and its member links
func (r *photoRepository) Create(ctx context.Context, photo *domain.FamilyPhoto, memberIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Category 는 참조 데이터라 함께 저장하지 않음
		if err := tx.Omit("Category").Create(photo).Error; err != nil {
			return err
		}
		if len(memberIDs) == 0 {
			return nil
		}

		now := time.Now()
		seen := make(map[string]struct{}, len(memberIDs))
		links := make([]domain.PhotoMember, 0, len(memberIDs))
		for _, id := range memberIDs {
			if _, ok := seen[id]; ok || id == "" {
				continue
			}
			seen[id] = struct{}{}
			links = append(links, domain.PhotoMember{PhotoID: photo.ID, MemberID: id, CreatedAt: now})
		}
		if len(links) == 0 {
			return nil
		}
		return tx.Create(&links).Error
	})
}
