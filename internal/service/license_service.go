package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/internal/license"
	"backend/internal/model"

	"gorm.io/gorm"
)

type IssueLicenseRequest struct {
	Licensee  string `json:"licensee" binding:"required,max=255"`
	Plan      string `json:"plan" binding:"required,oneof=starter professional enterprise"`
	ExpiresAt string `json:"expiresAt"` // RFC3339; empty means perpetual
}

type LicenseResponse struct {
	Token  string         `json:"token"`
	Status license.Status `json:"status"`
}

type LicenseService interface {
	Evaluate(ctx context.Context, tenantID string) (*LicenseResponse, error)
	Issue(ctx context.Context, tenantID string, req IssueLicenseRequest) (*LicenseResponse, error)
	Seed(ctx context.Context, tenantID, token string) error
}

type licenseService struct {
	db     *gorm.DB
	signer *license.Signer
}

func NewLicenseService(db *gorm.DB, signer *license.Signer) LicenseService {
	return &licenseService{db: db, signer: signer}
}

// Evaluate verifies the tenant's stored token. A tenant without a license
// reports invalid with a reason rather than erroring.
func (s *licenseService) Evaluate(ctx context.Context, tenantID string) (*LicenseResponse, error) {
	var row model.License
	err := s.db.WithContext(ctx).First(&row, "tenant_id = ?", tenantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &LicenseResponse{Status: license.Status{Valid: false, Reason: "no license issued"}}, nil
		}
		return nil, fmt.Errorf("failed to fetch license: %w", err)
	}

	return &LicenseResponse{Token: row.Token, Status: s.signer.Evaluate(row.Token)}, nil
}

// Seed stores a pre-issued token for the tenant at boot. A token already
// issued through the API wins over the environment-provided one.
func (s *licenseService) Seed(ctx context.Context, tenantID, token string) error {
	if token == "" {
		return nil
	}
	var row model.License
	err := s.db.WithContext(ctx).First(&row, "tenant_id = ?", tenantID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = model.License{TenantID: tenantID, Token: token}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed license: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to fetch license: %w", err)
	default:
		return nil
	}
}

// Issue signs a fresh token for the tenant, replacing any previous one.
func (s *licenseService) Issue(ctx context.Context, tenantID string, req IssueLicenseRequest) (*LicenseResponse, error) {
	claims := license.Claims{
		Licensee: req.Licensee,
		TenantID: tenantID,
		Plan:     req.Plan,
	}
	if req.ExpiresAt != "" {
		exp, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			return nil, validationf("expiresAt must be an RFC3339 timestamp")
		}
		if exp.Before(time.Now()) {
			return nil, validationf("expiresAt must be in the future")
		}
		claims.ExpiresAt = exp.Unix()
	}

	token, err := s.signer.Issue(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to sign license: %w", err)
	}

	var row model.License
	err = s.db.WithContext(ctx).First(&row, "tenant_id = ?", tenantID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = model.License{TenantID: tenantID, Token: token}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, fmt.Errorf("failed to store license: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to fetch license: %w", err)
	default:
		row.Token = token
		if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
			return nil, fmt.Errorf("failed to store license: %w", err)
		}
	}

	return &LicenseResponse{Token: token, Status: s.signer.Evaluate(token)}, nil
}
