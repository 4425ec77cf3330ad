// Package validation holds the request schemas for the two surfaces and the
// entity-reference check every path parameter goes through.
package validation

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"farmlink/entities"
	"farmlink/pkg/apperr"
)

// Reference parses a path or body parameter as an entity reference.
// Malformed input fails before any storage lookup.
func Reference(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.InvalidReference("invalid id, please try again")
	}
	return id, nil
}

type FarmPayload struct {
	Area float64 `json:"area"`
}

func (p FarmPayload) Validate() error {
	if p.Area <= 0 {
		return apperr.Validation("area of farm cannot be empty")
	}
	return nil
}

type ReportPayload struct {
	Crop      string `json:"crop"`
	Condition string `json:"condition"`
	PestScale *int   `json:"pest_scale"`
	Note      string `json:"note"`
}

var reportConditions = map[string]bool{"good": true, "fair": true, "poor": true}

func (p ReportPayload) Validate() error {
	if p.Crop == "" {
		return apperr.Validation("crop is required")
	}
	if !reportConditions[p.Condition] {
		return apperr.Validation("condition must be one of good, fair, poor")
	}
	if p.PestScale != nil && (*p.PestScale < 0 || *p.PestScale > 10) {
		return apperr.Validation("pest_scale must be between 0 and 10")
	}
	return nil
}

type TradePayload struct {
	Farm   string             `json:"farm"`
	Farmer string             `json:"farmer"`
	Amount decimal.Decimal    `json:"amount"`
	Kind   entities.TradeKind `json:"kind"`
	Note   string             `json:"note"`
}

var tradeKinds = map[entities.TradeKind]bool{
	entities.TradeSale:     true,
	entities.TradePurchase: true,
	entities.TradeAdvance:  true,
}

// Validate checks the schema and returns the parsed farm and farmer
// references.
func (p TradePayload) Validate() (farmID, farmerID uuid.UUID, err error) {
	if farmID, err = Reference(p.Farm); err != nil {
		return uuid.Nil, uuid.Nil, apperr.Validation("farm must be a valid reference")
	}
	if farmerID, err = Reference(p.Farmer); err != nil {
		return uuid.Nil, uuid.Nil, apperr.Validation("farmer must be a valid reference")
	}
	if !p.Amount.IsPositive() {
		return uuid.Nil, uuid.Nil, apperr.Validation("amount must be positive")
	}
	if !tradeKinds[p.Kind] {
		return uuid.Nil, uuid.Nil, apperr.Validation("kind must be one of sale, purchase, advance")
	}
	return farmID, farmerID, nil
}
