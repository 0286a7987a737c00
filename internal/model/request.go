package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RequestStatusNew       = "new"
	RequestStatusContacted = "contacted"
	RequestStatusClosed    = "closed"
)

// ConciergeRequest is a lead submitted through the public contact form.
type ConciergeRequest struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string           `gorm:"type:varchar(160);not null" json:"name"`
	Email       string           `gorm:"type:varchar(255);not null" json:"email"`
	Phone       *string          `gorm:"type:varchar(40)" json:"phone"`
	Destination *string          `gorm:"type:varchar(160)" json:"destination"`
	Budget      *decimal.Decimal `gorm:"type:decimal(15,2)" json:"budget"` // Indicative trip budget
	Message     *string          `gorm:"type:text" json:"message"`
	Status      string           `gorm:"type:varchar(20);not null;default:new;index" json:"status"`
	CreatedAt   time.Time        `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (r *ConciergeRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
