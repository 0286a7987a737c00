package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- DTOs (wire shape is camelCase; storage is snake_case) ---

type ServiceRequest struct {
	Slug        string   `json:"slug" binding:"required,max=120"`
	Title       string   `json:"title" binding:"required,max=160"`
	Description string   `json:"description" binding:"max=4000"`
	Icon        string   `json:"icon" binding:"max=80"`
	Items       []string `json:"items" binding:"max=20,dive,max=200"`
	Position    *int     `json:"position" binding:"omitempty,min=0,max=999"`
	IsActive    *bool    `json:"isActive"`
}

type ServiceResponse struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Icon        *string  `json:"icon"`
	Items       []string `json:"items"`
	Position    *int     `json:"position"`
	IsActive    bool     `json:"isActive"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type DestinationRequest struct {
	Slug        string `json:"slug" binding:"required,max=120"`
	Name        string `json:"name" binding:"required,max=160"`
	Tagline     string `json:"tagline" binding:"max=255"`
	Description string `json:"description" binding:"max=4000"`
	Region      string `json:"region" binding:"max=120"`
	ImageURL    string `json:"imageUrl" binding:"max=2048"`
	Position    *int   `json:"position" binding:"omitempty,min=0,max=999"`
	IsActive    *bool  `json:"isActive"`
}

type DestinationResponse struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Tagline     *string `json:"tagline"`
	Description *string `json:"description"`
	Region      *string `json:"region"`
	ImageURL    *string `json:"imageUrl"`
	Position    *int    `json:"position"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type BannerRequest struct {
	Slug     string `json:"slug" binding:"required,max=120"`
	Title    string `json:"title" binding:"required,max=160"`
	Subtitle string `json:"subtitle" binding:"max=255"`
	ImageURL string `json:"imageUrl" binding:"max=2048"`
	CtaLabel string `json:"ctaLabel" binding:"max=80"`
	CtaURL   string `json:"ctaUrl" binding:"max=2048"`
	Position *int   `json:"position" binding:"omitempty,min=0,max=999"`
	IsActive *bool  `json:"isActive"`
}

type BannerResponse struct {
	ID        string  `json:"id"`
	Slug      string  `json:"slug"`
	Title     string  `json:"title"`
	Subtitle  *string `json:"subtitle"`
	ImageURL  *string `json:"imageUrl"`
	CtaLabel  *string `json:"ctaLabel"`
	CtaURL    *string `json:"ctaUrl"`
	Position  *int    `json:"position"`
	IsActive  bool    `json:"isActive"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type SectionRequest struct {
	Slug     string `json:"slug" binding:"required,max=120"`
	PageSlug string `json:"pageSlug" binding:"required,max=120"`
	Heading  string `json:"heading" binding:"required,max=160"`
	Body     string `json:"body" binding:"max=20000"`
	CtaLabel string `json:"ctaLabel" binding:"max=80"`
	CtaURL   string `json:"ctaUrl" binding:"max=2048"`
	Position *int   `json:"position" binding:"omitempty,min=0,max=999"`
	IsActive *bool  `json:"isActive"`
}

type SectionResponse struct {
	ID        string  `json:"id"`
	Slug      string  `json:"slug"`
	PageSlug  string  `json:"pageSlug"`
	Heading   string  `json:"heading"`
	Body      *string `json:"body"`
	CtaLabel  *string `json:"ctaLabel"`
	CtaURL    *string `json:"ctaUrl"`
	Position  *int    `json:"position"`
	IsActive  bool    `json:"isActive"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type PageRequest struct {
	Slug            string `json:"slug" binding:"required,max=120"`
	Title           string `json:"title" binding:"required,max=160"`
	MetaTitle       string `json:"metaTitle" binding:"max=160"`
	MetaDescription string `json:"metaDescription" binding:"max=320"`
	Body            string `json:"body" binding:"max=100000"`
	Position        *int   `json:"position" binding:"omitempty,min=0,max=999"`
	IsActive        *bool  `json:"isActive"`
}

type PageResponse struct {
	ID              string  `json:"id"`
	Slug            string  `json:"slug"`
	Title           string  `json:"title"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
	Body            *string `json:"body"`
	Position        *int    `json:"position"`
	IsActive        bool    `json:"isActive"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// --- Interface ---

// ContentService owns every CMS-managed collection. Mutations follow one
// shape: validate, write exactly once, then re-read the full ordered
// collection for the response. Delete methods additionally report whether a
// row was removed, so callers audit only deletions that had an effect.
type ContentService interface {
	ListServices(ctx context.Context) ([]ServiceResponse, error)
	CreateService(ctx context.Context, req ServiceRequest) ([]ServiceResponse, error)
	UpdateService(ctx context.Context, id string, req ServiceRequest) ([]ServiceResponse, error)
	DeleteService(ctx context.Context, id string) ([]ServiceResponse, bool, error)

	ListDestinations(ctx context.Context) ([]DestinationResponse, error)
	CreateDestination(ctx context.Context, req DestinationRequest) ([]DestinationResponse, error)
	UpdateDestination(ctx context.Context, id string, req DestinationRequest) ([]DestinationResponse, error)
	DeleteDestination(ctx context.Context, id string) ([]DestinationResponse, bool, error)

	ListBanners(ctx context.Context) ([]BannerResponse, error)
	CreateBanner(ctx context.Context, req BannerRequest) ([]BannerResponse, error)
	UpdateBanner(ctx context.Context, id string, req BannerRequest) ([]BannerResponse, error)
	DeleteBanner(ctx context.Context, id string) ([]BannerResponse, bool, error)

	ListSections(ctx context.Context) ([]SectionResponse, error)
	CreateSection(ctx context.Context, req SectionRequest) ([]SectionResponse, error)
	UpdateSection(ctx context.Context, id string, req SectionRequest) ([]SectionResponse, error)
	DeleteSection(ctx context.Context, id string) ([]SectionResponse, bool, error)

	ListPages(ctx context.Context) ([]PageResponse, error)
	CreatePage(ctx context.Context, req PageRequest) ([]PageResponse, error)
	UpdatePage(ctx context.Context, id string, req PageRequest) ([]PageResponse, error)
	DeletePage(ctx context.Context, id string) ([]PageResponse, bool, error)
}

type contentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) ContentService {
	return &contentService{db: db}
}

// --- Shared helpers ---

// checkSlugUnique enforces per-type slug uniqueness at the validation
// boundary; excludeID skips the row being updated.
func (s *contentService) checkSlugUnique(ctx context.Context, table, slug string, excludeID *uuid.UUID) error {
	query := s.db.WithContext(ctx).Table(table).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if count > 0 {
		return validationf("slug '%s' already exists", slug)
	}
	return nil
}

func parseEntityID(kind, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, validationf("invalid %s id", kind)
	}
	return parsed, nil
}

// deleteByID removes the row if present. A missing id is not an error: the
// second delete of the same id succeeds with no effect.
func (s *contentService) deleteByID(ctx context.Context, entity interface{}, id uuid.UUID) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(entity)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// --- Services ---

func (s *contentService) ListServices(ctx context.Context) ([]ServiceResponse, error) {
	var rows []model.Service
	if err := s.db.WithContext(ctx).Order(collectionOrder).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	res := make([]ServiceResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, toServiceResponse(r))
	}
	return res, nil
}

func (s *contentService) CreateService(ctx context.Context, req ServiceRequest) ([]ServiceResponse, error) {
	if err := validateSlug(req.Slug); err != nil {
		return nil, err
	}
	if err := s.checkSlugUnique(ctx, "services", req.Slug, nil); err != nil {
		return nil, err
	}

	row := model.Service{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: optional(req.Description),
		Icon:        optional(req.Icon),
		Items:       marshalItems(req.Items),
		Position:    req.Position,
		IsActive:    boolOrDefault(req.IsActive, true),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return s.ListServices(ctx)
}

func (s *contentService) UpdateService(ctx context.Context, id string, req ServiceRequest) ([]ServiceResponse, error) {
	rowID, err := parseEntityID("service", id)
	if err != nil {
		return nil, err
	}
	if err := validateSlug(req.Slug); err != nil {
		return nil, err
	}
	if err := s.checkSlugUnique(ctx, "services", req.Slug, &rowID); err != nil {
		return nil, err
	}

	var row model.Service
	if err := s.db.WithContext(ctx).First(&row, "id = ?", rowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationf("service not found")
		}
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}

	row.Slug = req.Slug
	row.Title = req.Title
	row.Description = optional(req.Description)
	row.Icon = optional(req.Icon)
	row.Items = marshalItems(req.Items)
	row.Position = req.Position
	row.IsActive = boolOrDefault(req.IsActive, row.IsActive)

	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return s.ListServices(ctx)
}

func (s *contentService) DeleteService(ctx context.Context, id string) ([]ServiceResponse, bool, error) {
	rowID, err := parseEntityID("service", id)
	if err != nil {
		return nil, false, err
	}
	deleted, err := s.deleteByID(ctx, &model.Service{}, rowID)
	if err != nil {
		return nil, false, err
	}
	list, err := s.ListServices(ctx)
	return list, deleted, err
}

// --- Destinations ---

func (s *contentService) ListDestinations(ctx context.Context) ([]DestinationResponse, error) {
	var rows []model.Destination
	if err := s.db.WithContext(ctx).Order(collectionOrder).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch destinations: %w", err)
	}
	res := make([]DestinationResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, toDestinationResponse(r))
	}
	return res, nil
}

func (s *contentService) CreateDestination(ctx context.Context, req DestinationRequest) ([]DestinationResponse, error) {
	if err := validateSlug(req.Slug); err != nil {
		return nil, err
	}
	if err := validateWebURL("imageUrl", req.ImageURL); err != nil {
		return nil, err
	}
	if err := s.checkSlugUnique(ctx, "destinations", req.Slug, nil); err != nil {
		return nil, err
	}

	row := model.Destination{
		Slug:        req.Slug,
		Name:        req.Name,
		Tagline:     optional(req.Tagline),
		Description: optional(req.Description),
		Region:      optional(req.Region),
		ImageURL:    optional(req.ImageURL),
		Position:    req.Position,
		IsActive:    boolOrDefault(req.IsActive, true),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create destination: %w", err)
	}
	return s.ListDestinations(ctx)
}

func (s *contentService) UpdateDestination(ctx context.Context, id string, req DestinationRequest) ([]DestinationResponse, error) {
	rowID, err := parseEntityID("destination", id)
	if err != nil {
		return nil, err
	}
	if err := validateSlug(req.Slug); err != nil {
		return nil, err
	}
	if err := validateWebURL("imageUrl", req.ImageURL); err != nil {
		return nil, err
	}
	if err := s.checkSlugUnique(ctx, "destinations", req.Slug, &rowID); err != nil {
		return nil, err
	}

	var row model.Destination
	if err := s.db.WithContext(ctx).First(&row, "id = ?", rowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationf("destination not found")
		}
		return nil, fmt.Errorf("failed to fetch destination: %w", err)
	}

	row.Slug = req.Slug
	row.Name = req.Name
	row.Tagline = optional(req.Tagline)
	row.Description = optional(req.Description)
	row.Region = optional(req.Region)
	row.ImageURL = optional(req.ImageURL)
	row.Position = req.Position
	row.IsActive = boolOrDefault(req.IsActive, row.IsActive)

	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to update destination: %w", err)
	}
	return s.ListDestinations(ctx)
}

func (s *contentService) DeleteDestination(ctx context.Context, id string) ([]DestinationResponse, bool, error) {
	rowID, err := parseEntityID("destination", id)
	if err != nil {
		return nil, false, err
	}
	deleted, err := s.deleteByID(ctx, &model.Destination{}, rowID)
	if err != nil {
		return nil, false, err
	}
	list, err := s.ListDestinations(ctx)
	return list, deleted, err
}

// --- Banners ---

func (s *contentService) ListBanners(ctx context.Context) ([]BannerResponse, error) {
	var rows []model.Banner
	if err := s.db.WithContext(ctx).Order(collectionOrder).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch banners: %w", err)
	}
	res := make([]BannerResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, toBannerResponse(r))
	}
	return res, nil
}

func (s *contentService) CreateBanner(ctx context.Context, req BannerRequest) ([]BannerResponse, error) {
	if err := s.validateBanner(ctx, req, nil); err != nil {
		return nil, err
	}

	row := model.Banner{
		Slug:     req.Slug,
		Title:    req.Title,
		Subtitle: optional(req.Subtitle),
		ImageURL: optional(req.ImageURL),
		CtaLabel: optional(req.CtaLabel),
		CtaURL:   optional(req.CtaURL),
		Position: req.Position,
		IsActive: boolOrDefault(req.IsActive, true),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create banner: %w", err)
	}
	return s.ListBanners(ctx)
}

func (s *contentService) UpdateBanner(ctx context.Context, id string, req BannerRequest) ([]BannerResponse, error) {
	rowID, err := parseEntityID("banner", id)
	if err != nil {
		return nil, err
	}
	if err := s.validateBanner(ctx, req, &rowID); err != nil {
		return nil, err
	}

	var row model.Banner
	if err := s.db.WithContext(ctx).First(&row, "id = ?", rowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationf("banner not found")
		}
		return nil, fmt.Errorf("failed to fetch banner: %w", err)
	}

	row.Slug = req.Slug
	row.Title = req.Title
	row.Subtitle = optional(req.Subtitle)
	row.ImageURL = optional(req.ImageURL)
	row.CtaLabel = optional(req.CtaLabel)
	row.CtaURL = optional(req.CtaURL)
	row.Position = req.Position
	row.IsActive = boolOrDefault(req.IsActive, row.IsActive)

	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to update banner: %w", err)
	}
	return s.ListBanners(ctx)
}

func (s *contentService) DeleteBanner(ctx context.Context, id string) ([]BannerResponse, bool, error) {
	rowID, err := parseEntityID("banner", id)
	if err != nil {
		return nil, false, err
	}
	deleted, err := s.deleteByID(ctx, &model.Banner{}, rowID)
	if err != nil {
		return nil, false, err
	}
	list, err := s.ListBanners(ctx)
	return list, deleted, err
}

func (s *contentService) validateBanner(ctx context.Context, req BannerRequest, excludeID *uuid.UUID) error {
	if err := validateSlug(req.Slug); err != nil {
		return err
	}
	if err := validateWebURL("imageUrl", req.ImageURL); err != nil {
		return err
	}
	if err := validateCtaURL("ctaUrl", req.CtaURL); err != nil {
		return err
	}
	return s.checkSlugUnique(ctx, "banners", req.Slug, excludeID)
}

// --- Sections ---

func (s *contentService) ListSections(ctx context.Context) ([]SectionResponse, error) {
	var rows []model.Section
	if err := s.db.WithContext(ctx).Order(collectionOrder).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch sections: %w", err)
	}
	res := make([]SectionResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, toSectionResponse(r))
	}
	return res, nil
}

func (s *contentService) CreateSection(ctx context.Context, req SectionRequest) ([]SectionResponse, error) {
	if err := s.validateSection(ctx, req, nil); err != nil {
		return nil, err
	}

	row := model.Section{
		Slug:     req.Slug,
		PageSlug: req.PageSlug,
		Heading:  req.Heading,
		Body:     optional(req.Body),
		CtaLabel: optional(req.CtaLabel),
		CtaURL:   optional(req.CtaURL),
		Position: req.Position,
		IsActive: boolOrDefault(req.IsActive, true),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create section: %w", err)
	}
	return s.ListSections(ctx)
}

func (s *contentService) UpdateSection(ctx context.Context, id string, req SectionRequest) ([]SectionResponse, error) {
	rowID, err := parseEntityID("section", id)
	if err != nil {
		return nil, err
	}
	if err := s.validateSection(ctx, req, &rowID); err != nil {
		return nil, err
	}

	var row model.Section
	if err := s.db.WithContext(ctx).First(&row, "id = ?", rowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationf("section not found")
		}
		return nil, fmt.Errorf("failed to fetch section: %w", err)
	}

	row.Slug = req.Slug
	row.PageSlug = req.PageSlug
	row.Heading = req.Heading
	row.Body = optional(req.Body)
	row.CtaLabel = optional(req.CtaLabel)
	row.CtaURL = optional(req.CtaURL)
	row.Position = req.Position
	row.IsActive = boolOrDefault(req.IsActive, row.IsActive)

	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to update section: %w", err)
	}
	return s.ListSections(ctx)
}

func (s *contentService) DeleteSection(ctx context.Context, id string) ([]SectionResponse, bool, error) {
	rowID, err := parseEntityID("section", id)
	if err != nil {
		return nil, false, err
	}
	deleted, err := s.deleteByID(ctx, &model.Section{}, rowID)
	if err != nil {
		return nil, false, err
	}
	list, err := s.ListSections(ctx)
	return list, deleted, err
}

func (s *contentService) validateSection(ctx context.Context, req SectionRequest, excludeID *uuid.UUID) error {
	if err := validateSlug(req.Slug); err != nil {
		return err
	}
	if err := validateSlug(req.PageSlug); err != nil {
		return err
	}
	if err := validateCtaURL("ctaUrl", req.CtaURL); err != nil {
		return err
	}
	return s.checkSlugUnique(ctx, "sections", req.Slug, excludeID)
}

// --- Pages ---

func (s *contentService) ListPages(ctx context.Context) ([]PageResponse, error) {
	var rows []model.Page
	if err := s.db.WithContext(ctx).Order(collectionOrder).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch pages: %w", err)
	}
	res := make([]PageResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, toPageResponse(r))
	}
	return res, nil
}

func (s *contentService) CreatePage(ctx context.Context, req PageRequest) ([]PageResponse, error) {
	if err := validateSlug(req.Slug); err != nil {
		return nil, err
	}
	if err := s.checkSlugUnique(ctx, "pages", req.Slug, nil); err != nil {
		return nil, err
	}

	row := model.Page{
		Slug:            req.Slug,
		Title:           req.Title,
		MetaTitle:       optional(req.MetaTitle),
		MetaDescription: optional(req.MetaDescription),
		Body:            optional(req.Body),
		Position:        req.Position,
		IsActive:        boolOrDefault(req.IsActive, true),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return s.ListPages(ctx)
}

func (s *contentService) UpdatePage(ctx context.Context, id string, req PageRequest) ([]PageResponse, error) {
	rowID, err := parseEntityID("page", id)
	if err != nil {
		return nil, err
	}
	if err := validateSlug(req.Slug); err != nil {
		return nil, err
	}
	if err := s.checkSlugUnique(ctx, "pages", req.Slug, &rowID); err != nil {
		return nil, err
	}

	var row model.Page
	if err := s.db.WithContext(ctx).First(&row, "id = ?", rowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationf("page not found")
		}
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}

	row.Slug = req.Slug
	row.Title = req.Title
	row.MetaTitle = optional(req.MetaTitle)
	row.MetaDescription = optional(req.MetaDescription)
	row.Body = optional(req.Body)
	row.Position = req.Position
	row.IsActive = boolOrDefault(req.IsActive, row.IsActive)

	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}
	return s.ListPages(ctx)
}

func (s *contentService) DeletePage(ctx context.Context, id string) ([]PageResponse, bool, error) {
	rowID, err := parseEntityID("page", id)
	if err != nil {
		return nil, false, err
	}
	deleted, err := s.deleteByID(ctx, &model.Page{}, rowID)
	if err != nil {
		return nil, false, err
	}
	list, err := s.ListPages(ctx)
	return list, deleted, err
}

// --- Mapping ---

func marshalItems(items []string) []byte {
	if items == nil {
		items = []string{}
	}
	raw, _ := json.Marshal(items)
	return raw
}

func unmarshalItems(raw []byte) []string {
	items := []string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &items)
	}
	return items
}

func toServiceResponse(r model.Service) ServiceResponse {
	return ServiceResponse{
		ID:          r.ID.String(),
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Description,
		Icon:        r.Icon,
		Items:       unmarshalItems(r.Items),
		Position:    r.Position,
		IsActive:    r.IsActive,
		CreatedAt:   formatTime(r.CreatedAt),
		UpdatedAt:   formatTime(r.UpdatedAt),
	}
}

func toDestinationResponse(r model.Destination) DestinationResponse {
	return DestinationResponse{
		ID:          r.ID.String(),
		Slug:        r.Slug,
		Name:        r.Name,
		Tagline:     r.Tagline,
		Description: r.Description,
		Region:      r.Region,
		ImageURL:    r.ImageURL,
		Position:    r.Position,
		IsActive:    r.IsActive,
		CreatedAt:   formatTime(r.CreatedAt),
		UpdatedAt:   formatTime(r.UpdatedAt),
	}
}

func toBannerResponse(r model.Banner) BannerResponse {
	return BannerResponse{
		ID:        r.ID.String(),
		Slug:      r.Slug,
		Title:     r.Title,
		Subtitle:  r.Subtitle,
		ImageURL:  r.ImageURL,
		CtaLabel:  r.CtaLabel,
		CtaURL:    r.CtaURL,
		Position:  r.Position,
		IsActive:  r.IsActive,
		CreatedAt: formatTime(r.CreatedAt),
		UpdatedAt: formatTime(r.UpdatedAt),
	}
}

func toSectionResponse(r model.Section) SectionResponse {
	return SectionResponse{
		ID:        r.ID.String(),
		Slug:      r.Slug,
		PageSlug:  r.PageSlug,
		Heading:   r.Heading,
		Body:      r.Body,
		CtaLabel:  r.CtaLabel,
		CtaURL:    r.CtaURL,
		Position:  r.Position,
		IsActive:  r.IsActive,
		CreatedAt: formatTime(r.CreatedAt),
		UpdatedAt: formatTime(r.UpdatedAt),
	}
}

func toPageResponse(r model.Page) PageResponse {
	return PageResponse{
		ID:              r.ID.String(),
		Slug:            r.Slug,
		Title:           r.Title,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		Body:            r.Body,
		Position:        r.Position,
		IsActive:        r.IsActive,
		CreatedAt:       formatTime(r.CreatedAt),
		UpdatedAt:       formatTime(r.UpdatedAt),
	}
}
