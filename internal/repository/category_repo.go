package repository

import (
	"context"

	"github.com/familyalbum/album-backend/internal/domain"
	"gorm.io/gorm"
)

// CategoryRepository photo category data access interface
type CategoryRepository interface {
	List(ctx context.Context) ([]*domain.PhotoCategory, error)
	CountPhotos(ctx context.Context) (map[string]int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// List returns all categories ordered by name
func (r *categoryRepository) List(ctx context.Context) ([]*domain.PhotoCategory, error) {
	var categories []*domain.PhotoCategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CountPhotos returns the number of photos per category id
func (r *categoryRepository) CountPhotos(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		CategoryID string
		Total      int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.FamilyPhoto{}).
		Select("category_id, COUNT(*) AS total").
		Where("category_id IS NOT NULL").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Total
	}
	return counts, nil
}
