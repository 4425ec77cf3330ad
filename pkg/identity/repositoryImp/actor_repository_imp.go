package repositoryImp

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmlink/entities"
	"farmlink/pkg/apperr"
	"farmlink/pkg/identity/repository"
)

type actorRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ActorRepository { return &actorRepo{db} }

func (r *actorRepo) Create(a *entities.Actor) error { return r.db.Create(a).Error }

func (r *actorRepo) FindByID(id uuid.UUID) (*entities.Actor, error) {
	var a entities.Actor
	if err := r.db.Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("there is no user found")
		}
		return nil, err
	}
	return &a, nil
}

func (r *actorRepo) FindByEmail(email string) (*entities.Actor, error) {
	var a entities.Actor
	if err := r.db.Where("email = ?", email).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("there is no user found")
		}
		return nil, err
	}
	return &a, nil
}
