package repository

import (
	"time"

	"github.com/google/uuid"

	"farmlink/entities"
)

type ReportRepository interface {
	Create(r *entities.FarmReport) error
	FindByID(id uuid.UUID) (*entities.FarmReport, error)
	// MarkAcknowledged flips isAcknowledged to true as a single-row update;
	// re-marking an acknowledged report succeeds with the same state.
	MarkAcknowledged(id uuid.UUID) (*entities.FarmReport, error)
	// ForFarm returns a farm's reports ordered by creation time ascending.
	ForFarm(farmID uuid.UUID) ([]entities.FarmReport, error)
	// LatestSince returns the farmer's newest report created at or after the
	// cutoff; absence is a not-found failure.
	LatestSince(farmerID uuid.UUID, cutoff time.Time) (*entities.FarmReport, error)
}
