package repository

import (
	"context"
	"errors"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"gorm.io/gorm"
)

// MemoryRepository family memory data access interface
type MemoryRepository interface {
	ListForMember(ctx context.Context, memberID string) ([]*domain.FamilyMemory, error)
	FindByID(ctx context.Context, id string) (*domain.FamilyMemory, error)
	Create(ctx context.Context, memory *domain.FamilyMemory) error
	Update(ctx context.Context, id string, fields domain.MemoryFields) (*domain.FamilyMemory, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type memoryRepository struct {
	db *gorm.DB
}

// NewMemoryRepository creates a new MemoryRepository
func NewMemoryRepository(db *gorm.DB) MemoryRepository {
	return &memoryRepository{db: db}
}

// ListForMember returns a member's memories, latest memory date first
func (r *memoryRepository) ListForMember(ctx context.Context, memberID string) ([]*domain.FamilyMemory, error) {
	var memories []*domain.FamilyMemory
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("memory_date DESC").
		Order("created_at DESC").
		Find(&memories).Error
	if err != nil {
		return nil, err
	}
	return memories, nil
}

// FindByID finds memory by ID
func (r *memoryRepository) FindByID(ctx context.Context, id string) (*domain.FamilyMemory, error) {
	var memory domain.FamilyMemory
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&memory).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrMemoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &memory, nil
}

// Create creates a new memory
func (r *memoryRepository) Create(ctx context.Context, memory *domain.FamilyMemory) error {
	return r.db.WithContext(ctx).Create(memory).Error
}

// Update overwrites the editable fields of a memory
func (r *memoryRepository) Update(ctx context.Context, id string, fields domain.MemoryFields) (*domain.FamilyMemory, error) {
	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}
	err := r.db.WithContext(ctx).
		Model(&domain.FamilyMemory{}).
		Where("id = ?", id).
		Updates(fields.Columns()).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete removes a memory; false means nothing matched
func (r *memoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.FamilyMemory{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
