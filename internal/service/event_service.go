package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/internal/repository"
	"github.com/go-playground/validator/v10"
)

// CreateEventRequest is the input for a new event
type CreateEventRequest struct {
	Title             string    `json:"title" validate:"required,max=200"`
	EventDate         time.Time `json:"event_date" validate:"required"`
	Location          *string   `json:"location,omitempty" validate:"omitempty,max=255"`
	Description       *string   `json:"description,omitempty"`
	Attendees         []string  `json:"attendees,omitempty"`
	EventType         *string   `json:"event_type,omitempty" validate:"omitempty,oneof=birthday holiday vacation milestone other"`
	Photos            []string  `json:"photos,omitempty"`
	IsRecurring       bool      `json:"is_recurring"`
	RecurrencePattern *string   `json:"recurrence_pattern,omitempty" validate:"omitempty,max=50"`
}

// EventService family event business logic
type EventService interface {
	ListEvents(ctx context.Context) common.Result[[]*domain.FamilyEvent]
	PartitionEvents(ctx context.Context) common.Result[domain.EventPartition]
	GetEvent(ctx context.Context, id string) common.Result[*domain.FamilyEvent]
	CreateEvent(ctx context.Context, req *CreateEventRequest) (*domain.FamilyEvent, error)
}

type eventService struct {
	repo     repository.EventRepository
	validate *validator.Validate
	now      func() time.Time
}

// NewEventService creates a new EventService
func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo, validate: validator.New(), now: time.Now}
}

// ListEvents returns events, most recent first
func (s *eventService) ListEvents(ctx context.Context) common.Result[[]*domain.FamilyEvent] {
	events, err := s.repo.List(ctx)
	recordFetchFailure("events", "list", err)
	return common.Collection(events, err)
}

// PartitionEvents splits the event list into upcoming and past around the current time
func (s *eventService) PartitionEvents(ctx context.Context) common.Result[domain.EventPartition] {
	res := s.ListEvents(ctx)
	return common.Result[domain.EventPartition]{
		Data: domain.PartitionEvents(res.Data, s.now()),
		Err:  res.Err,
	}
}

// GetEvent returns a single event
func (s *eventService) GetEvent(ctx context.Context, id string) common.Result[*domain.FamilyEvent] {
	event, err := s.repo.FindByID(ctx, id)
	recordFetchFailure("events", "get", err)
	return common.Single(event, err)
}

// CreateEvent validates and inserts an event
func (s *eventService) CreateEvent(ctx context.Context, req *CreateEventRequest) (*domain.FamilyEvent, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrInvalidInput)
	}

	event := &domain.FamilyEvent{
		Title:             req.Title,
		EventDate:         req.EventDate,
		Location:          req.Location,
		Description:       req.Description,
		Attendees:         nonNil(req.Attendees),
		Photos:            nonNil(req.Photos),
		IsRecurring:       req.IsRecurring,
		RecurrencePattern: req.RecurrencePattern,
	}
	if req.EventType != nil {
		t := domain.EventType(*req.EventType)
		event.EventType = &t
	}

	if err := s.repo.Create(ctx, event); err != nil {
		recordWriteFailure("events", "create", err)
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
