package service

import (
	"context"
	"fmt"

	"backend/internal/model"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// PublicContent is the aggregated read model the marketing site renders
// from: every active collection in display order, fetched concurrently.
type PublicContent struct {
	Services     []ServiceResponse     `json:"services"`
	Destinations []DestinationResponse `json:"destinations"`
	Banners      []BannerResponse      `json:"banners"`
	Sections     []SectionResponse     `json:"sections"`
	Pages        []PageResponse        `json:"pages"`
}

type PublicService interface {
	Content(ctx context.Context) (*PublicContent, error)
}

type publicService struct {
	db *gorm.DB
}

func NewPublicService(db *gorm.DB) PublicService {
	return &publicService{db: db}
}

func (s *publicService) Content(ctx context.Context) (*PublicContent, error) {
	var content PublicContent
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var rows []model.Service
		if err := s.activeQuery(gctx).Find(&rows).Error; err != nil {
			return fmt.Errorf("failed to fetch services: %w", err)
		}
		content.Services = make([]ServiceResponse, 0, len(rows))
		for _, r := range rows {
			content.Services = append(content.Services, toServiceResponse(r))
		}
		return nil
	})
	g.Go(func() error {
		var rows []model.Destination
		if err := s.activeQuery(gctx).Find(&rows).Error; err != nil {
			return fmt.Errorf("failed to fetch destinations: %w", err)
		}
		content.Destinations = make([]DestinationResponse, 0, len(rows))
		for _, r := range rows {
			content.Destinations = append(content.Destinations, toDestinationResponse(r))
		}
		return nil
	})
	g.Go(func() error {
		var rows []model.Banner
		if err := s.activeQuery(gctx).Find(&rows).Error; err != nil {
			return fmt.Errorf("failed to fetch banners: %w", err)
		}
		content.Banners = make([]BannerResponse, 0, len(rows))
		for _, r := range rows {
			content.Banners = append(content.Banners, toBannerResponse(r))
		}
		return nil
	})
	g.Go(func() error {
		var rows []model.Section
		if err := s.activeQuery(gctx).Find(&rows).Error; err != nil {
			return fmt.Errorf("failed to fetch sections: %w", err)
		}
		content.Sections = make([]SectionResponse, 0, len(rows))
		for _, r := range rows {
			content.Sections = append(content.Sections, toSectionResponse(r))
		}
		return nil
	})
	g.Go(func() error {
		var rows []model.Page
		if err := s.activeQuery(gctx).Find(&rows).Error; err != nil {
			return fmt.Errorf("failed to fetch pages: %w", err)
		}
		content.Pages = make([]PageResponse, 0, len(rows))
		for _, r := range rows {
			content.Pages = append(content.Pages, toPageResponse(r))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &content, nil
}

func (s *publicService) activeQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Where("is_active = ?", true).Order(collectionOrder)
}
