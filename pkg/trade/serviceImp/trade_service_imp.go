package serviceImp

import (
	"github.com/google/uuid"

	"farmlink/entities"
	"farmlink/pkg/apperr"
	ownrepo "farmlink/pkg/ownership/repository"
	"farmlink/pkg/scope"
	"farmlink/pkg/trade/repository"
	svc "farmlink/pkg/trade/service"
	"farmlink/pkg/validation"
)

type tradeSvc struct {
	trades repository.TradeRepository
	graph  ownrepo.OwnershipRepository
}

func New(trades repository.TradeRepository, graph ownrepo.OwnershipRepository) svc.TradeService {
	return &tradeSvc{trades: trades, graph: graph}
}

// Record verifies both edges of the trade triple before writing: the named
// farmer must be assigned to the acting agent, and the named farm must be
// owned by that farmer.
func (s *tradeSvc) Record(sc scope.Scope, p validation.TradePayload) (*entities.Transaction, error) {
	farmID, farmerID, err := p.Validate()
	if err != nil {
		return nil, err
	}
	farmer, err := sc.RequireFarmer(farmerID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.Validation("farmer is not assigned to this agent")
		}
		return nil, err
	}
	owned, err := s.graph.IsOwnedBy(farmID, farmer.ID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, apperr.Validation("farm does not belong to the named farmer")
	}

	t := &entities.Transaction{
		FarmID:   farmID,
		FarmerID: farmer.ID,
		AgentID:  sc.Actor().ID,
		Amount:   p.Amount,
		Kind:     p.Kind,
		Note:     p.Note,
	}
	if err := s.trades.Create(t); err != nil {
		return nil, apperr.Persistence("create transaction failed", err)
	}
	return t, nil
}

func (s *tradeSvc) ForFarm(sc scope.Scope, farmID uuid.UUID) ([]entities.Transaction, error) {
	farm, err := sc.RequireFarm(farmID)
	if err != nil {
		return nil, err
	}
	return s.trades.ForFarm(farm.FarmID)
}

func (s *tradeSvc) ForFarmer(sc scope.Scope) ([]svc.FarmerView, error) {
	txns, err := s.trades.ForFarmer(sc.Actor().ID)
	if err != nil {
		return nil, err
	}
	farms := map[uuid.UUID]svc.FarmView{}
	out := make([]svc.FarmerView, 0, len(txns))
	for _, t := range txns {
		fv, ok := farms[t.FarmID]
		if !ok {
			farm, err := s.graph.FarmByID(t.FarmID)
			if err != nil {
				return nil, err
			}
			fv = svc.FarmView{ID: farm.FarmID, AreaRai: farm.AreaRai}
			farms[t.FarmID] = fv
		}
		out = append(out, svc.FarmerView{
			ID:        t.TransactionID,
			Farm:      fv,
			Amount:    t.Amount,
			Kind:      t.Kind,
			Note:      t.Note,
			CreatedAt: t.CreatedAt,
		})
	}
	return out, nil
}
