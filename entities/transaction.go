package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TradeKind string

const (
	TradeSale     TradeKind = "sale"
	TradePurchase TradeKind = "purchase"
	TradeAdvance  TradeKind = "advance"
)

// Transaction is an append-only trade record; it is never updated or deleted.
type Transaction struct {
	TransactionID uuid.UUID       `gorm:"type:text;primaryKey" json:"id"`
	FarmID        uuid.UUID       `gorm:"type:text;index" json:"farm"`
	FarmerID      uuid.UUID       `gorm:"type:text;index" json:"farmer"`
	AgentID       uuid.UUID       `gorm:"type:text;index" json:"agent"` // always the farmer's assigned agent
	Amount        decimal.Decimal `gorm:"type:text" json:"amount"`
	Kind          TradeKind       `json:"kind"`
	Note          string          `json:"note,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"-"`
}

func (t *Transaction) BeforeCreate(*gorm.DB) error {
	if t.TransactionID == uuid.Nil {
		t.TransactionID = uuid.New()
	}
	return nil
}
