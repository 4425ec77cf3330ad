package repository

import (
	"github.com/google/uuid"

	"farmlink/entities"
)

type ActorRepository interface {
	Create(a *entities.Actor) error
	FindByID(id uuid.UUID) (*entities.Actor, error)
	FindByEmail(email string) (*entities.Actor, error)
}
