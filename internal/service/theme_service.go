package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"backend/internal/model"

	"gorm.io/gorm"
)

// defaultThemeTokens are the read-through defaults returned for tenants
// that never saved a theme document.
var defaultThemeTokens = map[string]interface{}{
	"colorPrimary":    "#1a1a2e",
	"colorAccent":     "#c9a227",
	"colorSurface":    "#f8f7f4",
	"fontHeading":     "Cormorant Garamond",
	"fontBody":        "Inter",
	"radiusBase":      "2px",
	"spacingUnit":     "8px",
	"maxContentWidth": "1280px",
}

type ThemeResponse struct {
	TenantID  string                 `json:"tenantId"`
	Tokens    map[string]interface{} `json:"tokens"`
	UpdatedAt *string                `json:"updatedAt"`
}

type UpdateThemeRequest struct {
	Tokens map[string]interface{} `json:"tokens" binding:"required"`
}

const maxThemeTokens = 200

type ThemeService interface {
	GetTheme(ctx context.Context, tenantID string) (*ThemeResponse, error)
	UpdateTheme(ctx context.Context, tenantID string, req UpdateThemeRequest) (*ThemeResponse, error)
}

type themeService struct {
	db *gorm.DB
}

func NewThemeService(db *gorm.DB) ThemeService {
	return &themeService{db: db}
}

func (s *themeService) GetTheme(ctx context.Context, tenantID string) (*ThemeResponse, error) {
	var row model.ThemeConfig
	err := s.db.WithContext(ctx).First(&row, "tenant_id = ?", tenantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ThemeResponse{TenantID: tenantID, Tokens: defaultThemeTokens}, nil
		}
		return nil, fmt.Errorf("failed to fetch theme: %w", err)
	}
	return toThemeResponse(row), nil
}

func (s *themeService) UpdateTheme(ctx context.Context, tenantID string, req UpdateThemeRequest) (*ThemeResponse, error) {
	if len(req.Tokens) == 0 {
		return nil, validationf("tokens must not be empty")
	}
	if len(req.Tokens) > maxThemeTokens {
		return nil, validationf("tokens must not exceed %d entries", maxThemeTokens)
	}
	for key, value := range req.Tokens {
		if key == "" {
			return nil, validationf("token keys must not be empty")
		}
		if str, ok := value.(string); ok && len(str) > 512 {
			return nil, validationf("token '%s' value too long", key)
		}
	}

	raw, err := json.Marshal(req.Tokens)
	if err != nil {
		return nil, validationf("tokens must be JSON-serializable")
	}

	var row model.ThemeConfig
	err = s.db.WithContext(ctx).First(&row, "tenant_id = ?", tenantID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = model.ThemeConfig{TenantID: tenantID, Tokens: raw}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, fmt.Errorf("failed to create theme: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to fetch theme: %w", err)
	default:
		row.Tokens = raw
		if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
			return nil, fmt.Errorf("failed to update theme: %w", err)
		}
	}

	return toThemeResponse(row), nil
}

func toThemeResponse(row model.ThemeConfig) *ThemeResponse {
	tokens := map[string]interface{}{}
	if len(row.Tokens) > 0 {
		_ = json.Unmarshal(row.Tokens, &tokens)
	}
	updated := formatTime(row.UpdatedAt)
	return &ThemeResponse{TenantID: row.TenantID, Tokens: tokens, UpdatedAt: &updated}
}
