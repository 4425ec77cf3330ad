package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAgent  Role = "agent"
	RoleFarmer Role = "farmer"
)

type Actor struct {
	ID          uuid.UUID  `gorm:"type:text;primaryKey" json:"id"`
	Name        string     `json:"name"`
	Email       string     `gorm:"uniqueIndex" json:"email"`
	PhoneNumber string     `json:"phone_number"`
	Role        Role       `gorm:"index" json:"role"`
	AgentID     *uuid.UUID `gorm:"type:text;index" json:"agent,omitempty"` // assigned agent; nil for agents
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"-"`
}

func (a *Actor) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Contact is the slice of an actor exposed to other actors in listings.
type Contact struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
}

func (a Actor) Contact() Contact {
	return Contact{ID: a.ID, Name: a.Name, Email: a.Email, PhoneNumber: a.PhoneNumber}
}
