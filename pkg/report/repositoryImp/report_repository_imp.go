package repositoryImp

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmlink/entities"
	"farmlink/pkg/apperr"
	"farmlink/pkg/report/repository"
)

type reportRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReportRepository { return &reportRepo{db} }

func (r *reportRepo) Create(rpt *entities.FarmReport) error { return r.db.Create(rpt).Error }

func (r *reportRepo) FindByID(id uuid.UUID) (*entities.FarmReport, error) {
	var rpt entities.FarmReport
	if err := r.db.Where("report_id = ?", id).First(&rpt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("there is no report found")
		}
		return nil, err
	}
	return &rpt, nil
}

func (r *reportRepo) MarkAcknowledged(id uuid.UUID) (*entities.FarmReport, error) {
	res := r.db.Model(&entities.FarmReport{}).
		Where("report_id = ?", id).
		Update("is_acknowledged", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("there is no report found")
	}
	return r.FindByID(id)
}

func (r *reportRepo) ForFarm(farmID uuid.UUID) ([]entities.FarmReport, error) {
	var out []entities.FarmReport
	if err := r.db.Where("farm_id = ?", farmID).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reportRepo) LatestSince(farmerID uuid.UUID, cutoff time.Time) (*entities.FarmReport, error) {
	// Stored timestamps are UTC; bind the cutoff in the same zone so the
	// comparison is not between wall clocks of two different offsets.
	var rpt entities.FarmReport
	err := r.db.Where("farmer_id = ? AND created_at >= ?", farmerID, cutoff.UTC()).
		Order("created_at DESC").
		First(&rpt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("there is no report found today")
		}
		return nil, err
	}
	return &rpt, nil
}
