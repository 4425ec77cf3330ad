package controllerImp

import (
	"github.com/labstack/echo/v4"

	"farmlink/entities"
	"farmlink/pkg/agent/controller"
	"farmlink/pkg/apperr"
	idrepo "farmlink/pkg/identity/repository"
	"farmlink/pkg/middleware"
	ownrepo "farmlink/pkg/ownership/repository"
	reportsvc "farmlink/pkg/report/service"
	"farmlink/pkg/respond"
	"farmlink/pkg/scope"
	tradesvc "farmlink/pkg/trade/service"
	"farmlink/pkg/validation"
)

type agentCtrl struct {
	graph   ownrepo.OwnershipRepository
	actors  idrepo.ActorRepository
	reports reportsvc.ReportService
	trades  tradesvc.TradeService
}

func New(graph ownrepo.OwnershipRepository, actors idrepo.ActorRepository, reports reportsvc.ReportService, trades tradesvc.TradeService) controller.AgentController {
	return &agentCtrl{graph: graph, actors: actors, reports: reports, trades: trades}
}

func (h *agentCtrl) scope(c echo.Context) scope.Scope {
	return scope.For(*middleware.ActorFrom(c), h.graph, h.actors)
}

func (h *agentCtrl) Farmers(c echo.Context) error {
	farmers, err := h.scope(c).VisibleFarmers(c.QueryParam("search"))
	if err != nil {
		return err
	}
	contacts := make([]entities.Contact, 0, len(farmers))
	for _, f := range farmers {
		contacts = append(contacts, f.Contact())
	}
	return respond.OK(c, contacts)
}

func (h *agentCtrl) FarmsOfFarmer(c echo.Context) error {
	farmerID, err := validation.Reference(c.Param("farmerId"))
	if err != nil {
		return err
	}
	farms, err := h.scope(c).FarmsOfFarmer(farmerID)
	if err != nil {
		return err
	}
	if len(farms) == 0 {
		return apperr.NotFound("there are no farms found for this farmer")
	}
	return respond.OK(c, farms)
}

func (h *agentCtrl) ReportToday(c echo.Context) error {
	farmerID, err := validation.Reference(c.Param("farmerId"))
	if err != nil {
		return err
	}
	rpt, err := h.reports.LatestToday(h.scope(c), farmerID)
	if err != nil {
		return err
	}
	return respond.OK(c, rpt)
}

func (h *agentCtrl) ReportsOfFarm(c echo.Context) error {
	farmID, err := validation.Reference(c.Param("farmId"))
	if err != nil {
		return err
	}
	rpts, err := h.reports.ForFarm(h.scope(c), farmID)
	if err != nil {
		return err
	}
	if len(rpts) == 0 {
		return apperr.NotFound("there are no reports found for this farm")
	}
	return respond.OK(c, rpts)
}

func (h *agentCtrl) AcknowledgeReport(c echo.Context) error {
	reportID, err := validation.Reference(c.Param("reportId"))
	if err != nil {
		return err
	}
	rpt, err := h.reports.Acknowledge(h.scope(c), reportID)
	if err != nil {
		return err
	}
	return respond.OK(c, rpt)
}

func (h *agentCtrl) CreateTrade(c echo.Context) error {
	var p validation.TradePayload
	if err := c.Bind(&p); err != nil {
		return apperr.Validation("bad json")
	}
	t, err := h.trades.Record(h.scope(c), p)
	if err != nil {
		return err
	}
	return respond.Created(c, "transaction created successfully", t)
}

func (h *agentCtrl) TradesOfFarm(c echo.Context) error {
	farmID, err := validation.Reference(c.Param("farmId"))
	if err != nil {
		return err
	}
	txns, err := h.trades.ForFarm(h.scope(c), farmID)
	if err != nil {
		return err
	}
	return respond.OK(c, txns)
}

func (h *agentCtrl) FarmArea(c echo.Context) error {
	farmID, err := validation.Reference(c.Param("id"))
	if err != nil {
		return err
	}
	farm, err := h.scope(c).RequireFarm(farmID)
	if err != nil {
		return err
	}
	return respond.OK(c, farm.AreaRai)
}
