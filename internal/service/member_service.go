package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/internal/repository"
	"github.com/familyalbum/album-backend/pkg/cache"
	pkglogger "github.com/familyalbum/album-backend/pkg/logger"
)

const memberListKey = cache.PrefixMembers + "all"

// MemberService family member business logic
type MemberService interface {
	ListMembers(ctx context.Context) common.Result[[]*domain.FamilyMember]
	GetMember(ctx context.Context, id string) common.Result[*domain.FamilyMember]
	MembersByIDs(ctx context.Context, ids []string) common.Result[[]*domain.FamilyMember]

	CreateMember(ctx context.Context, member *domain.FamilyMember) (*domain.FamilyMember, error)
	UpdateMember(ctx context.Context, id string, upd domain.MemberUpdate) (*domain.FamilyMember, error)
}

type memberService struct {
	repo  repository.MemberRepository
	cache cache.Service
}

// NewMemberService creates a new MemberService. A nil cache disables list caching.
func NewMemberService(repo repository.MemberRepository, c cache.Service) MemberService {
	if c == nil {
		c = cache.NewService(nil)
	}
	return &memberService{repo: repo, cache: c}
}

// ListMembers returns every member ordered by name
func (s *memberService) ListMembers(ctx context.Context) common.Result[[]*domain.FamilyMember] {
	var cached []*domain.FamilyMember
	if err := s.cache.Get(ctx, memberListKey, &cached); err == nil {
		return common.Collection(cached, nil)
	}

	members, err := s.repo.List(ctx)
	if err != nil {
		recordFetchFailure("members", "list", err)
		return common.Collection[*domain.FamilyMember](nil, err)
	}

	if err := s.cache.Set(ctx, memberListKey, members, cache.TTLMembers); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("member list cache set failed")
	}
	return common.Collection(members, nil)
}

// GetMember returns a single member
func (s *memberService) GetMember(ctx context.Context, id string) common.Result[*domain.FamilyMember] {
	member, err := s.repo.FindByID(ctx, id)
	recordFetchFailure("members", "get", err)
	return common.Single(member, err)
}

// MembersByIDs resolves a set of member ids, skipping unknown ones
func (s *memberService) MembersByIDs(ctx context.Context, ids []string) common.Result[[]*domain.FamilyMember] {
	members, err := s.repo.FindByIDs(ctx, ids)
	recordFetchFailure("members", "by_ids", err)
	return common.Collection(members, err)
}

// CreateMember inserts a member
func (s *memberService) CreateMember(ctx context.Context, member *domain.FamilyMember) (*domain.FamilyMember, error) {
	member.Name = strings.TrimSpace(member.Name)
	if member.Name == "" {
		return nil, fmt.Errorf("name is required: %w", common.ErrInvalidInput)
	}
	if member.FunFacts == nil {
		member.FunFacts = []string{}
	}

	if err := s.repo.Create(ctx, member); err != nil {
		recordWriteFailure("members", "create", err)
		return nil, fmt.Errorf("create member: %w", err)
	}
	s.invalidate(ctx)
	return member, nil
}

// UpdateMember applies a partial update
func (s *memberService) UpdateMember(ctx context.Context, id string, upd domain.MemberUpdate) (*domain.FamilyMember, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, fmt.Errorf("name cannot be blank: %w", common.ErrInvalidInput)
	}
	// 바뀌는 필드가 없으면 쓰기와 캐시 무효화 모두 생략
	if upd.IsEmpty() {
		res := s.GetMember(ctx, id)
		if !res.OK() {
			return nil, fmt.Errorf("update member %s: %w", id, res.Err)
		}
		return res.Data, nil
	}

	member, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if !isNotFound(err) {
			recordWriteFailure("members", "update", err)
		}
		return nil, fmt.Errorf("update member %s: %w", id, err)
	}
	s.invalidate(ctx)
	return member, nil
}

func (s *memberService) invalidate(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, cache.PrefixMembers); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("member cache invalidation failed")
	}
}
