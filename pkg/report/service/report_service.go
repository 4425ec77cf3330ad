package service

import (
	"time"

	"github.com/google/uuid"

	"farmlink/entities"
	"farmlink/pkg/scope"
	"farmlink/pkg/validation"
)

// FarmView is the farm slice resolved onto report output.
type FarmView struct {
	ID      uuid.UUID `json:"id"`
	AreaRai float64   `json:"area"`
}

// View is a report with its farmer and farm references resolved instead of
// referenced; internal bookkeeping fields are stripped.
type View struct {
	ID             uuid.UUID        `json:"id"`
	Farm           FarmView         `json:"farm"`
	Farmer         entities.Contact `json:"farmer"`
	Crop           string           `json:"crop"`
	Condition      string           `json:"condition"`
	PestScale      *int             `json:"pest_scale,omitempty"`
	Note           string           `json:"note,omitempty"`
	IsAcknowledged bool             `json:"isAcknowledged"`
	CreatedAt      time.Time        `json:"created_at"`
}

// ReportService is the report workflow: submitted on creation, acknowledged
// exactly one way, never reverted.
type ReportService interface {
	Submit(sc scope.Scope, farmID uuid.UUID, p validation.ReportPayload) (*View, error)
	Acknowledge(sc scope.Scope, reportID uuid.UUID) (*entities.FarmReport, error)
	ForFarm(sc scope.Scope, farmID uuid.UUID) ([]View, error)
	LatestToday(sc scope.Scope, farmerID uuid.UUID) (*entities.FarmReport, error)
}
