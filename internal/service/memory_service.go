package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/internal/repository"
)

// MemoryService member memory CRUD
type MemoryService interface {
	ListForMember(ctx context.Context, memberID string) common.Result[[]*domain.FamilyMemory]
	CreateMemory(ctx context.Context, memberID string, fields domain.MemoryFields) (*domain.FamilyMemory, error)
	UpdateMemory(ctx context.Context, id string, fields domain.MemoryFields) (*domain.FamilyMemory, error)
	DeleteMemory(ctx context.Context, id string) (bool, error)
}

type memoryService struct {
	repo repository.MemoryRepository
}

// NewMemoryService creates a new MemoryService
func NewMemoryService(repo repository.MemoryRepository) MemoryService {
	return &memoryService{repo: repo}
}

// ListForMember returns a member's memories, latest first
func (s *memoryService) ListForMember(ctx context.Context, memberID string) common.Result[[]*domain.FamilyMemory] {
	memories, err := s.repo.ListForMember(ctx, memberID)
	recordFetchFailure("memories", "list", err)
	return common.Collection(memories, err)
}

func validateMemory(fields *domain.MemoryFields) error {
	fields.Title = strings.TrimSpace(fields.Title)
	if fields.Title == "" || strings.TrimSpace(fields.Content) == "" {
		return fmt.Errorf("title and content are required: %w", common.ErrInvalidInput)
	}
	return nil
}

// CreateMemory inserts a memory for memberID
func (s *memoryService) CreateMemory(ctx context.Context, memberID string, fields domain.MemoryFields) (*domain.FamilyMemory, error) {
	if err := validateMemory(&fields); err != nil {
		return nil, err
	}

	memory := &domain.FamilyMemory{
		MemberID:   memberID,
		Title:      fields.Title,
		Content:    fields.Content,
		MemoryDate: fields.MemoryDate,
		Location:   fields.Location,
		IsFavorite: fields.IsFavorite,
	}
	if err := s.repo.Create(ctx, memory); err != nil {
		recordWriteFailure("memories", "create", err)
		return nil, fmt.Errorf("create memory: %w", err)
	}
	return memory, nil
}

// UpdateMemory overwrites a memory's editable fields
func (s *memoryService) UpdateMemory(ctx context.Context, id string, fields domain.MemoryFields) (*domain.FamilyMemory, error) {
	if err := validateMemory(&fields); err != nil {
		return nil, err
	}

	memory, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		if !isNotFound(err) {
			recordWriteFailure("memories", "update", err)
		}
		return nil, fmt.Errorf("update memory %s: %w", id, err)
	}
	return memory, nil
}

// DeleteMemory removes a memory; false means it did not exist
func (s *memoryService) DeleteMemory(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		recordWriteFailure("memories", "delete", err)
		return false, fmt.Errorf("delete memory %s: %w", id, err)
	}
	return ok, nil
}
