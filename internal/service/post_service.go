package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/internal/repository"
)

// PostService family post business logic
type PostService interface {
	ListPosts(ctx context.Context, limit int) common.Result[[]*domain.FamilyPost]
	CreatePost(ctx context.Context, post *domain.FamilyPost) (*domain.FamilyPost, error)
}

type postService struct {
	repo repository.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(repo repository.PostRepository) PostService {
	return &postService{repo: repo}
}

// ListPosts returns posts, newest first
func (s *postService) ListPosts(ctx context.Context, limit int) common.Result[[]*domain.FamilyPost] {
	posts, err := s.repo.List(ctx, limit)
	recordFetchFailure("posts", "list", err)
	return common.Collection(posts, err)
}

// CreatePost inserts a post
func (s *postService) CreatePost(ctx context.Context, post *domain.FamilyPost) (*domain.FamilyPost, error) {
	post.Title = strings.TrimSpace(post.Title)
	if post.Title == "" || strings.TrimSpace(post.Content) == "" {
		return nil, fmt.Errorf("title and content are required: %w", common.ErrInvalidInput)
	}
	post.Images = nonNil(post.Images)
	post.Tags = nonNil(post.Tags)

	if err := s.repo.Create(ctx, post); err != nil {
		recordWriteFailure("posts", "create", err)
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}
