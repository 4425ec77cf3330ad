package controllerImp

import (
	"github.com/labstack/echo/v4"

	"farmlink/entities"
	"farmlink/pkg/apperr"
	"farmlink/pkg/farmer/controller"
	idrepo "farmlink/pkg/identity/repository"
	"farmlink/pkg/middleware"
	ownrepo "farmlink/pkg/ownership/repository"
	reportsvc "farmlink/pkg/report/service"
	"farmlink/pkg/respond"
	"farmlink/pkg/scope"
	tradesvc "farmlink/pkg/trade/service"
	"farmlink/pkg/validation"
)

type farmerCtrl struct {
	graph   ownrepo.OwnershipRepository
	actors  idrepo.ActorRepository
	reports reportsvc.ReportService
	trades  tradesvc.TradeService
}

func New(graph ownrepo.OwnershipRepository, actors idrepo.ActorRepository, reports reportsvc.ReportService, trades tradesvc.TradeService) controller.FarmerController {
	return &farmerCtrl{graph: graph, actors: actors, reports: reports, trades: trades}
}

func (h *farmerCtrl) scope(c echo.Context) scope.Scope {
	return scope.For(*middleware.ActorFrom(c), h.graph, h.actors)
}

func (h *farmerCtrl) ChatUsers(c echo.Context) error {
	users, err := h.scope(c).VisibleFarmers(c.QueryParam("search"))
	if err != nil {
		return err
	}
	contacts := make([]entities.Contact, 0, len(users))
	for _, u := range users {
		contacts = append(contacts, u.Contact())
	}
	return respond.OK(c, contacts)
}

func (h *farmerCtrl) Farms(c echo.Context) error {
	sc := h.scope(c)
	farms, err := sc.FarmsOfFarmer(sc.Actor().ID)
	if err != nil {
		return err
	}
	return respond.OK(c, farms)
}

func (h *farmerCtrl) CreateFarm(c echo.Context) error {
	var p validation.FarmPayload
	if err := c.Bind(&p); err != nil {
		return apperr.Validation("bad json")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	farm := &entities.Farm{AreaRai: p.Area, FarmerID: middleware.ActorFrom(c).ID}
	if err := h.graph.CreateFarm(farm); err != nil {
		return apperr.Persistence("create farm failed", err)
	}
	return respond.OK(c, farm)
}

func (h *farmerCtrl) SubmitReport(c echo.Context) error {
	farmID, err := validation.Reference(c.Param("farmId"))
	if err != nil {
		return err
	}
	var p validation.ReportPayload
	if err := c.Bind(&p); err != nil {
		return apperr.Validation("bad json")
	}
	rpt, err := h.reports.Submit(h.scope(c), farmID, p)
	if err != nil {
		return err
	}
	return respond.Created(c, "", rpt)
}

func (h *farmerCtrl) Reports(c echo.Context) error {
	farmID, err := validation.Reference(c.Param("id"))
	if err != nil {
		return err
	}
	rpts, err := h.reports.ForFarm(h.scope(c), farmID)
	if err != nil {
		return err
	}
	return respond.OK(c, rpts)
}

func (h *farmerCtrl) Transactions(c echo.Context) error {
	txns, err := h.trades.ForFarmer(h.scope(c))
	if err != nil {
		return err
	}
	return respond.OK(c, txns)
}
