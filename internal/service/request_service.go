package service

import (
	"context"
	"errors"
	"fmt"

	"backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateRequestRequest struct {
	Name        string `json:"name" binding:"required,max=160"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"max=40"`
	Destination string `json:"destination" binding:"max=160"`
	Budget      string `json:"budget" binding:"max=20"` // Decimal string, e.g. "25000.00"
	Message     string `json:"message" binding:"max=4000"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new contacted closed"`
}

type RequestResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Destination *string `json:"destination"`
	Budget      *string `json:"budget"`
	Message     *string `json:"message"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// --- Interface ---

type RequestService interface {
	CreateRequest(ctx context.Context, req CreateRequestRequest) (*RequestResponse, error)
	ListRequests(ctx context.Context) ([]RequestResponse, error)
	UpdateRequestStatus(ctx context.Context, id string, req UpdateRequestStatusRequest) ([]RequestResponse, error)
}

type requestService struct {
	db *gorm.DB
}

func NewRequestService(db *gorm.DB) RequestService {
	return &requestService{db: db}
}

// --- Implementation ---

func (s *requestService) CreateRequest(ctx context.Context, req CreateRequestRequest) (*RequestResponse, error) {
	var budget *decimal.Decimal
	if req.Budget != "" {
		parsed, err := decimal.NewFromString(req.Budget)
		if err != nil {
			return nil, validationf("budget must be a decimal amount")
		}
		if parsed.IsNegative() {
			return nil, validationf("budget must not be negative")
		}
		budget = &parsed
	}

	row := model.ConciergeRequest{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       optional(req.Phone),
		Destination: optional(req.Destination),
		Budget:      budget,
		Message:     optional(req.Message),
		Status:      model.RequestStatusNew,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return toRequestResponse(row), nil
}

func (s *requestService) ListRequests(ctx context.Context) ([]RequestResponse, error) {
	var rows []model.ConciergeRequest
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch requests: %w", err)
	}
	res := make([]RequestResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, *toRequestResponse(r))
	}
	return res, nil
}

func (s *requestService) UpdateRequestStatus(ctx context.Context, id string, req UpdateRequestStatusRequest) ([]RequestResponse, error) {
	rowID, err := uuid.Parse(id)
	if err != nil {
		return nil, validationf("invalid request id")
	}

	var row model.ConciergeRequest
	if err := s.db.WithContext(ctx).First(&row, "id = ?", rowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationf("request not found")
		}
		return nil, fmt.Errorf("failed to fetch request: %w", err)
	}

	row.Status = req.Status
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to update request: %w", err)
	}

	return s.ListRequests(ctx)
}

func toRequestResponse(r model.ConciergeRequest) *RequestResponse {
	res := &RequestResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Destination: r.Destination,
		Message:     r.Message,
		Status:      r.Status,
		CreatedAt:   formatTime(r.CreatedAt),
	}
	if r.Budget != nil {
		b := r.Budget.StringFixed(2)
		res.Budget = &b
	}
	return res
}
