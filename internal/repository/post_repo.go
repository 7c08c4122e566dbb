package repository

import (
	"context"

	"github.com/familyalbum/album-backend/internal/domain"
	"gorm.io/gorm"
)

// PostRepository family post data access interface
type PostRepository interface {
	List(ctx context.Context, limit int) ([]*domain.FamilyPost, error)
	Create(ctx context.Context, post *domain.FamilyPost) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// List returns posts, newest post date first. limit <= 0 means no limit.
func (r *postRepository) List(ctx context.Context, limit int) ([]*domain.FamilyPost, error) {
	var posts []*domain.FamilyPost
	q := r.db.WithContext(ctx).Order("post_date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Create creates a new post
func (r *postRepository) Create(ctx context.Context, post *domain.FamilyPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}
