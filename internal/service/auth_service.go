package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/internal/repository"
	"github.com/familyalbum/album-backend/pkg/jwt"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// SignupRequest represents a signup request
type SignupRequest struct {
	Email       string `json:"email" binding:"required" validate:"required,email"`
	Password    string `json:"password" binding:"required" validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"max=120"`
}

// LoginResponse login response
type LoginResponse struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// TokenPair token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService authentication business logic
type AuthService interface {
	Signup(ctx context.Context, req *SignupRequest) (*LoginResponse, error)
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtManager *jwt.Manager
	validate   *validator.Validate
	hashCost   int
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtManager *jwt.Manager) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		validate:   validator.New(),
		hashCost:   bcrypt.DefaultCost,
	}
}

// Signup creates an account and signs it in
func (s *authService) Signup(ctx context.Context, req *SignupRequest) (*LoginResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrInvalidInput)
	}
	email := req.Email

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	user := &domain.User{Email: email, PasswordHash: string(hash), DisplayName: name}
	if err := s.userRepo.Create(ctx, user); err != nil {
		recordWriteFailure("users", "create", err)
		return nil, fmt.Errorf("create user: %w", err)
	}
	return s.issue(user)
}

// Login authenticates user and returns tokens
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	// 1. Find user
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Verify password
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	// 3. Generate JWT tokens
	return s.issue(user)
}

func (s *authService) issue(user *domain.User) (*LoginResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.DisplayName)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{User: user, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RefreshToken generates new tokens using refresh token
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwtManager.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	issued, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: issued.AccessToken, RefreshToken: issued.RefreshToken}, nil
}

// Me returns the signed-in user
func (s *authService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
