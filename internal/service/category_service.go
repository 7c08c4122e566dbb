package service

import (
	"context"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/internal/repository"
	"github.com/familyalbum/album-backend/pkg/cache"
	pkglogger "github.com/familyalbum/album-backend/pkg/logger"
)

const categoryListKey = cache.PrefixCategories + "all"

// CategoryWithCount is a category plus the number of photos filed under it
type CategoryWithCount struct {
	*domain.PhotoCategory
	PhotoCount int64 `json:"photo_count"`
}

// CategoryService photo category lookups
type CategoryService interface {
	ListCategories(ctx context.Context) common.Result[[]*domain.PhotoCategory]
	ListWithCounts(ctx context.Context) common.Result[[]CategoryWithCount]
}

type categoryService struct {
	repo  repository.CategoryRepository
	cache cache.Service
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(repo repository.CategoryRepository, c cache.Service) CategoryService {
	if c == nil {
		c = cache.NewService(nil)
	}
	return &categoryService{repo: repo, cache: c}
}

// ListCategories returns categories ordered by name. Categories are reference data
// and are cached longer than members.
func (s *categoryService) ListCategories(ctx context.Context) common.Result[[]*domain.PhotoCategory] {
	var cached []*domain.PhotoCategory
	if err := s.cache.Get(ctx, categoryListKey, &cached); err == nil {
		return common.Collection(cached, nil)
	}

	categories, err := s.repo.List(ctx)
	if err != nil {
		recordFetchFailure("categories", "list", err)
		return common.Collection[*domain.PhotoCategory](nil, err)
	}
	if err := s.cache.Set(ctx, categoryListKey, categories, cache.TTLCategories); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("category list cache set failed")
	}
	return common.Collection(categories, nil)
}

// ListWithCounts returns categories with their photo counts
func (s *categoryService) ListWithCounts(ctx context.Context) common.Result[[]CategoryWithCount] {
	res := s.ListCategories(ctx)
	if !res.OK() {
		return common.Collection[CategoryWithCount](nil, res.Err)
	}

	counts, err := s.repo.CountPhotos(ctx)
	if err != nil {
		recordFetchFailure("categories", "count", err)
		return common.Collection[CategoryWithCount](nil, err)
	}

	out := make([]CategoryWithCount, 0, len(res.Data))
	for _, c := range res.Data {
		out = append(out, CategoryWithCount{PhotoCategory: c, PhotoCount: counts[c.ID]})
	}
	return common.Collection(out, nil)
}
