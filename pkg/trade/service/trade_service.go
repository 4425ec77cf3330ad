package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"farmlink/entities"
	"farmlink/pkg/scope"
	"farmlink/pkg/validation"
)

type FarmView struct {
	ID      uuid.UUID `json:"id"`
	AreaRai float64   `json:"area"`
}

// FarmerView is a transaction shaped for the owning farmer: agent and farmer
// references are stripped, the farm is resolved to its area.
type FarmerView struct {
	ID        uuid.UUID          `json:"id"`
	Farm      FarmView           `json:"farm"`
	Amount    decimal.Decimal    `json:"amount"`
	Kind      entities.TradeKind `json:"kind"`
	Note      string             `json:"note,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

type TradeService interface {
	Record(sc scope.Scope, p validation.TradePayload) (*entities.Transaction, error)
	ForFarm(sc scope.Scope, farmID uuid.UUID) ([]entities.Transaction, error)
	ForFarmer(sc scope.Scope) ([]FarmerView, error)
}
