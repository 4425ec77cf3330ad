package repository

import (
	"github.com/google/uuid"

	"farmlink/entities"
)

// TradeRepository is append-only: records are created and listed, never
// updated or deleted.
type TradeRepository interface {
	Create(t *entities.Transaction) error
	ForFarm(farmID uuid.UUID) ([]entities.Transaction, error)
	ForFarmer(farmerID uuid.UUID) ([]entities.Transaction, error)
}
