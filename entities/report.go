package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FarmReport struct {
	ReportID       uuid.UUID `gorm:"type:text;primaryKey" json:"id"`
	FarmID         uuid.UUID `gorm:"type:text;index" json:"farm"`
	FarmerID       uuid.UUID `gorm:"type:text;index" json:"farmer"` // always equals the farm's owner
	Crop           string    `json:"crop"`
	Condition      string    `json:"condition"` // good|fair|poor
	PestScale      *int      `json:"pest_scale,omitempty"`
	Note           string    `json:"note,omitempty"`
	IsAcknowledged bool      `json:"isAcknowledged"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"-"`
}

func (r *FarmReport) BeforeCreate(*gorm.DB) error {
	if r.ReportID == uuid.Nil {
		r.ReportID = uuid.New()
	}
	return nil
}
