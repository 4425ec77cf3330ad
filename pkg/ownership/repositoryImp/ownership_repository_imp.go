package repositoryImp

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmlink/entities"
	"farmlink/pkg/apperr"
	"farmlink/pkg/ownership/repository"
)

type ownershipRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.OwnershipRepository { return &ownershipRepo{db} }

// searchClause narrows actor queries by case-insensitive substring on name
// or email.
func searchClause(q *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return q
	}
	term := "%" + strings.ToLower(search) + "%"
	return q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", term, term)
}

func (r *ownershipRepo) FarmersOfAgent(agentID uuid.UUID, search string) ([]entities.Actor, error) {
	var out []entities.Actor
	q := r.db.Where("agent_id = ?", agentID)
	if err := searchClause(q, search).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ownershipRepo) CoFarmersAndAgent(farmer *entities.Actor, search string) ([]entities.Actor, error) {
	if farmer.AgentID == nil {
		return nil, nil
	}
	var out []entities.Actor
	q := r.db.Where("id = ? OR (agent_id = ? AND id <> ?)", *farmer.AgentID, *farmer.AgentID, farmer.ID)
	if err := searchClause(q, search).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ownershipRepo) FarmsOfFarmer(farmerID uuid.UUID) ([]entities.Farm, error) {
	var out []entities.Farm
	if err := r.db.Where("farmer_id = ?", farmerID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ownershipRepo) FarmByID(farmID uuid.UUID) (*entities.Farm, error) {
	var f entities.Farm
	if err := r.db.Where("farm_id = ?", farmID).First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no farm found with provided id")
		}
		return nil, err
	}
	return &f, nil
}

func (r *ownershipRepo) IsOwnedBy(farmID, farmerID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.Model(&entities.Farm{}).
		Where("farm_id = ? AND farmer_id = ?", farmID, farmerID).
		Count(&n).Error
	return n > 0, err
}

func (r *ownershipRepo) CreateFarm(f *entities.Farm) error { return r.db.Create(f).Error }
