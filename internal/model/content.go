package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service is a concierge offering shown on the marketing site
// (private aviation, yacht charter, villa sourcing...).
type Service struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Slug        string         `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"`
	Title       string         `gorm:"type:varchar(160);not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description"`
	Icon        *string        `gorm:"type:varchar(80)" json:"icon"`
	Items       datatypes.JSON `gorm:"type:jsonb" json:"items"` // Bullet list of inclusions
	Position    *int           `gorm:"type:int" json:"position"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Destination is a featured travel destination.
type Destination struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug        string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"`
	Name        string    `gorm:"type:varchar(160);not null" json:"name"`
	Tagline     *string   `gorm:"type:varchar(255)" json:"tagline"`
	Description *string   `gorm:"type:text" json:"description"`
	Region      *string   `gorm:"type:varchar(120)" json:"region"`
	ImageURL    *string   `gorm:"type:varchar(2048)" json:"image_url"`
	Position    *int      `gorm:"type:int" json:"position"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (d *Destination) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// Banner is a hero/promo banner with an optional call-to-action link.
type Banner struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug      string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"`
	Title     string    `gorm:"type:varchar(160);not null" json:"title"`
	Subtitle  *string   `gorm:"type:varchar(255)" json:"subtitle"`
	ImageURL  *string   `gorm:"type:varchar(2048)" json:"image_url"`
	CtaLabel  *string   `gorm:"type:varchar(80)" json:"cta_label"`
	CtaURL    *string   `gorm:"type:varchar(2048)" json:"cta_url"` // http/https only, enforced at validation
	Position  *int      `gorm:"type:int" json:"position"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Banner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Section is a reusable content block placed on a marketing page.
type Section struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug      string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"`
	PageSlug  string    `gorm:"type:varchar(120);index;not null" json:"page_slug"`
	Heading   string    `gorm:"type:varchar(160);not null" json:"heading"`
	Body      *string   `gorm:"type:text" json:"body"`
	CtaLabel  *string   `gorm:"type:varchar(80)" json:"cta_label"`
	CtaURL    *string   `gorm:"type:varchar(2048)" json:"cta_url"`
	Position  *int      `gorm:"type:int" json:"position"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Page is a standalone marketing page (about, faq, legal...).
type Page struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug            string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"`
	Title           string    `gorm:"type:varchar(160);not null" json:"title"`
	MetaTitle       *string   `gorm:"type:varchar(160)" json:"meta_title"`
	MetaDescription *string   `gorm:"type:varchar(320)" json:"meta_description"`
	Body            *string   `gorm:"type:text" json:"body"`
	Position        *int      `gorm:"type:int" json:"position"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (p *Page) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
