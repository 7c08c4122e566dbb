package repository

import (
	"context"
	"errors"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"gorm.io/gorm"
)

// MemberRepository family member data access interface
type MemberRepository interface {
	List(ctx context.Context) ([]*domain.FamilyMember, error)
	FindByID(ctx context.Context, id string) (*domain.FamilyMember, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.FamilyMember, error)

	Create(ctx context.Context, member *domain.FamilyMember) error
	Update(ctx context.Context, id string, upd domain.MemberUpdate) (*domain.FamilyMember, error)
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// List returns every member ordered by name
func (r *memberRepository) List(ctx context.Context) ([]*domain.FamilyMember, error) {
	var members []*domain.FamilyMember
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// FindByID finds member by ID
func (r *memberRepository) FindByID(ctx context.Context, id string) (*domain.FamilyMember, error) {
	var member domain.FamilyMember
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByIDs returns the members that exist among ids
func (r *memberRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.FamilyMember, error) {
	var members []*domain.FamilyMember
	if len(ids) == 0 {
		return members, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Create creates a new member
func (r *memberRepository) Create(ctx context.Context, member *domain.FamilyMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// Update applies a partial update and returns the stored record
func (r *memberRepository) Update(ctx context.Context, id string, upd domain.MemberUpdate) (*domain.FamilyMember, error) {
	current, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cols := upd.Apply(current)
	if len(cols) == 0 {
		return current, nil
	}
	// Select 로 지정한 컬럼만 갱신 (nil/빈 값도 그대로 기록)
	cols = append(cols, "updated_at")
	if err := r.db.WithContext(ctx).Model(current).Select(cols).Updates(current).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}
