package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/rbac"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --- DTOs ---

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin editor viewer"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin editor viewer"`
}

// UserResponse returns a user without exposing sensitive data
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// --- Interface ---

type UserService interface {
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, *UserResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error)
	GetUser(ctx context.Context, id string) (*UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	CreateUser(ctx context.Context, req CreateUserRequest) ([]UserResponse, error)
	UpdateUserRole(ctx context.Context, id string, req UpdateUserRoleRequest) ([]UserResponse, error)
}

type userService struct {
	db        *gorm.DB
	jwtSecret []byte
}

func NewUserService(db *gorm.DB, jwtSecret []byte) UserService {
	return &userService{db: db, jwtSecret: jwtSecret}
}

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// --- Implementation ---

func (s *userService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, *UserResponse, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", req.Email).Error; err != nil {
		return nil, nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, nil, errors.New("invalid email or password")
	}

	access, err := s.signAccessToken(user)
	if err != nil {
		return nil, nil, err
	}

	refresh, err := s.issueRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	res := mapUserResponse(&user)
	return &TokenResponse{Token: access, RefreshToken: refresh}, res, nil
}

func (s *userService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.db.WithContext(ctx).Where("token = ?", refreshToken).Delete(&model.RefreshToken{}).Error
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	if refreshToken == "" {
		return nil, errors.New("refresh token is required")
	}

	var stored model.RefreshToken
	if err := s.db.WithContext(ctx).First(&stored, "token = ?", refreshToken).Error; err != nil {
		return nil, errors.New("invalid refresh token")
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.db.WithContext(ctx).Delete(&stored).Error
		return nil, errors.New("refresh token expired")
	}

	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", stored.UserID).Error; err != nil {
		return nil, errors.New("user no longer exists")
	}

	access, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	// Rotate: the old refresh token dies with its use.
	_ = s.db.WithContext(ctx).Delete(&stored).Error
	refresh, err := s.issueRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{Token: access, RefreshToken: refresh}, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*UserResponse, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("user not found")
	}
	return mapUserResponse(&user), nil
}

func (s *userService) ListUsers(ctx context.Context) ([]UserResponse, error) {
	var users []model.User
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	res := make([]UserResponse, 0, len(users))
	for i := range users {
		res = append(res, *mapUserResponse(&users[i]))
	}
	return res, nil
}

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) ([]UserResponse, error) {
	if !rbac.ValidRole(req.Role) {
		return nil, validationf("invalid role: must be admin, editor, or viewer")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if count > 0 {
		return nil, validationf("email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.ListUsers(ctx)
}

func (s *userService) UpdateUserRole(ctx context.Context, id string, req UpdateUserRoleRequest) ([]UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, validationf("invalid user id")
	}
	if !rbac.ValidRole(req.Role) {
		return nil, validationf("invalid role: must be admin, editor, or viewer")
	}

	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationf("user not found")
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	user.Role = req.Role
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}

	return s.ListUsers(ctx)
}

// --- Helpers ---

func (s *userService) signAccessToken(user model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", errors.New("failed to sign access token")
	}
	return signed, nil
}

func (s *userService) issueRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.New("failed to generate refresh token")
	}
	token := hex.EncodeToString(buf)

	stored := model.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}
	return token, nil
}

func mapUserResponse(user *model.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: formatTime(user.CreatedAt),
		UpdatedAt: formatTime(user.UpdatedAt),
	}
}
