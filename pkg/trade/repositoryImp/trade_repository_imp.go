package repositoryImp

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmlink/entities"
	"farmlink/pkg/trade/repository"
)

type tradeRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TradeRepository { return &tradeRepo{db} }

func (r *tradeRepo) Create(t *entities.Transaction) error { return r.db.Create(t).Error }

func (r *tradeRepo) ForFarm(farmID uuid.UUID) ([]entities.Transaction, error) {
	var out []entities.Transaction
	if err := r.db.Where("farm_id = ?", farmID).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *tradeRepo) ForFarmer(farmerID uuid.UUID) ([]entities.Transaction, error) {
	var out []entities.Transaction
	if err := r.db.Where("farmer_id = ?", farmerID).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
