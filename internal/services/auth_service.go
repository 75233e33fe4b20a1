package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"stocktrack_backend/internal/models"
	"stocktrack_backend/internal/repositories"
	"stocktrack_backend/pkg/utils"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// --- Auth DTOs ---

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenPair struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *models.User `json:"user"`
}

type RegisterRequest struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	FullName *string `json:"full_name"`
	Role     string  `json:"role"`
}

type AuthService interface {
	Login(req LoginRequest) (*TokenPair, error)
	Register(req RegisterRequest) (*models.User, error)
	Refresh(refreshToken string) (*TokenPair, error)
	GetUserByID(id int64) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(req LoginRequest) (*TokenPair, error) {
	user, hashedPassword, err := s.userRepo.FindUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueTokens(user)
}

func (s *authService) Register(req RegisterRequest) (*models.User, error) {
	if err := requireField(req.Username, "username"); err != nil {
		return nil, err
	}
	if len(req.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}
	role := req.Role
	if role == "" {
		role = "staff"
	}
	if err := requireOneOf(role, "role", "admin", "staff"); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &models.User{Username: req.Username, FullName: req.FullName, Role: role}
	if _, err := s.userRepo.CreateUser(user, string(hash)); err != nil {
		return nil, err
	}
	return s.userRepo.FindUserByID(user.ID)
}

func (s *authService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := utils.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	user, err := s.userRepo.FindUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return s.issueTokens(user)
}

func (s *authService) GetUserByID(id int64) (*models.User, error) {
	return s.userRepo.FindUserByID(id)
}

func (s *authService) issueTokens(user *models.User) (*TokenPair, error) {
	access, err := utils.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refresh, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, User: user}, nil
}
