package serviceImp

import (
	"time"

	"github.com/google/uuid"

	"farmlink/entities"
	"farmlink/pkg/apperr"
	"farmlink/pkg/report/repository"
	svc "farmlink/pkg/report/service"
	"farmlink/pkg/scope"
	"farmlink/pkg/validation"
)

type reportSvc struct {
	reports repository.ReportRepository
	loc     *time.Location
	now     func() time.Time
}

func New(reports repository.ReportRepository, loc *time.Location) svc.ReportService {
	return &reportSvc{reports: reports, loc: loc, now: time.Now}
}

func (s *reportSvc) Submit(sc scope.Scope, farmID uuid.UUID, p validation.ReportPayload) (*svc.View, error) {
	farm, err := sc.RequireFarm(farmID)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	// The farmer reference is denormalized from the farm's owner, so the
	// two can never disagree on a stored report.
	rpt := &entities.FarmReport{
		FarmID:    farm.FarmID,
		FarmerID:  farm.FarmerID,
		Crop:      p.Crop,
		Condition: p.Condition,
		PestScale: p.PestScale,
		Note:      p.Note,
	}
	if err := s.reports.Create(rpt); err != nil {
		return nil, apperr.Persistence("creating record failed", err)
	}

	farmer, err := sc.RequireFarmer(farm.FarmerID)
	if err != nil {
		return nil, err
	}
	v := view(rpt, farm, farmer)
	return &v, nil
}

func (s *reportSvc) Acknowledge(sc scope.Scope, reportID uuid.UUID) (*entities.FarmReport, error) {
	rpt, err := s.reports.FindByID(reportID)
	if err != nil {
		return nil, err
	}
	if _, err := sc.RequireFarmer(rpt.FarmerID); err != nil {
		return nil, apperr.NotFound("there is no report found")
	}
	return s.reports.MarkAcknowledged(rpt.ReportID)
}

func (s *reportSvc) ForFarm(sc scope.Scope, farmID uuid.UUID) ([]svc.View, error) {
	farm, err := sc.RequireFarm(farmID)
	if err != nil {
		return nil, err
	}
	farmer, err := sc.RequireFarmer(farm.FarmerID)
	if err != nil {
		return nil, err
	}
	rpts, err := s.reports.ForFarm(farm.FarmID)
	if err != nil {
		return nil, err
	}
	out := make([]svc.View, 0, len(rpts))
	for i := range rpts {
		out = append(out, view(&rpts[i], farm, farmer))
	}
	return out, nil
}

func (s *reportSvc) LatestToday(sc scope.Scope, farmerID uuid.UUID) (*entities.FarmReport, error) {
	farmer, err := sc.RequireFarmer(farmerID)
	if err != nil {
		return nil, err
	}
	return s.reports.LatestSince(farmer.ID, s.startOfDay())
}

// startOfDay is midnight of "now" in the configured timezone.
func (s *reportSvc) startOfDay() time.Time {
	now := s.now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
}

func view(rpt *entities.FarmReport, farm *entities.Farm, farmer *entities.Actor) svc.View {
	return svc.View{
		ID:             rpt.ReportID,
		Farm:           svc.FarmView{ID: farm.FarmID, AreaRai: farm.AreaRai},
		Farmer:         farmer.Contact(),
		Crop:           rpt.Crop,
		Condition:      rpt.Condition,
		PestScale:      rpt.PestScale,
		Note:           rpt.Note,
		IsAcknowledged: rpt.IsAcknowledged,
		CreatedAt:      rpt.CreatedAt,
	}
}
