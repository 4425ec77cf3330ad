package router

import (
	"github.com/labstack/echo/v4"

	"farmlink/entities"
	agentctrl "farmlink/pkg/agent/controller"
	farmerctrl "farmlink/pkg/farmer/controller"
	idctrl "farmlink/pkg/identity/controller"
	idsvc "farmlink/pkg/identity/service"
	"farmlink/pkg/metrics"
	"farmlink/pkg/middleware"
)

func New(
	e *echo.Echo,
	ids idsvc.IdentityService,
	identityCtrl idctrl.IdentityController,
	agentCtrl agentctrl.AgentController,
	farmerCtrl farmerctrl.FarmerController,
	healthCtrl interface{ Health(echo.Context) error },
	m *metrics.Metrics,
) *echo.Echo {
	e.Use(m.Middleware())

	e.GET("/health", healthCtrl.Health)
	e.GET("/metrics", m.Handler())
	e.GET("/devlogin", identityCtrl.DevLogin)

	auth := middleware.Authorize(ids)
	e.GET("/whoami", identityCtrl.WhoAmI, auth)

	a := e.Group("/agent", auth, middleware.Restrict(entities.RoleAgent))
	a.GET("/farmers", agentCtrl.Farmers)
	a.GET("/chatusers", agentCtrl.Farmers)
	a.GET("/farms/:farmerId", agentCtrl.FarmsOfFarmer)
	a.GET("/reports/today/:farmerId", agentCtrl.ReportToday)
	a.GET("/reports/:farmId", agentCtrl.ReportsOfFarm)
	a.PATCH("/report/:reportId", agentCtrl.AcknowledgeReport)
	a.POST("/trade/create", agentCtrl.CreateTrade)

	// authorize-only, callable by either role through their scope
	shared := e.Group("/agent", auth)
	shared.GET("/trade/:farmId", agentCtrl.TradesOfFarm)
	shared.GET("/farmarea/:id", agentCtrl.FarmArea)

	f := e.Group("/farmer", auth, middleware.Restrict(entities.RoleFarmer))
	f.GET("/chatusers", farmerCtrl.ChatUsers)
	f.GET("/farms", farmerCtrl.Farms)
	f.POST("/farm/create", farmerCtrl.CreateFarm)
	f.POST("/report/:farmId", farmerCtrl.SubmitReport)
	f.GET("/reports/:id", farmerCtrl.Reports)
	f.GET("/transaction", farmerCtrl.Transactions)

	return e
}
