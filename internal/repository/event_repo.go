package repository

import (
	"context"
	"errors"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"gorm.io/gorm"
)

// EventRepository family event data access interface
type EventRepository interface {
	List(ctx context.Context) ([]*domain.FamilyEvent, error)
	FindByID(ctx context.Context, id string) (*domain.FamilyEvent, error)
	Create(ctx context.Context, event *domain.FamilyEvent) error
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// List returns events, most recent date first
func (r *eventRepository) List(ctx context.Context) ([]*domain.FamilyEvent, error) {
	var events []*domain.FamilyEvent
	if err := r.db.WithContext(ctx).Order("event_date DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// FindByID finds event by ID
func (r *eventRepository) FindByID(ctx context.Context, id string) (*domain.FamilyEvent, error) {
	var event domain.FamilyEvent
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Create creates a new event
func (r *eventRepository) Create(ctx context.Context, event *domain.FamilyEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}
