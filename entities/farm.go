package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Farm struct {
	FarmID    uuid.UUID `gorm:"type:text;primaryKey" json:"id"`
	AreaRai   float64   `json:"area"` // rai
	FarmerID  uuid.UUID `gorm:"type:text;index" json:"farmer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (f *Farm) BeforeCreate(*gorm.DB) error {
	if f.FarmID == uuid.Nil {
		f.FarmID = uuid.New()
	}
	return nil
}
