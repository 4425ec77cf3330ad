package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"farmlink/config"
	"farmlink/database"
	"farmlink/router"

	agentCtrlImp "farmlink/pkg/agent/controllerImp"
	farmerCtrlImp "farmlink/pkg/farmer/controllerImp"
	healthCtrlImp "farmlink/pkg/health/controllerImp"
	idCtrlImp "farmlink/pkg/identity/controllerImp"
	idRepoImp "farmlink/pkg/identity/repositoryImp"
	idSvcImp "farmlink/pkg/identity/serviceImp"
	"farmlink/pkg/metrics"
	ownRepoImp "farmlink/pkg/ownership/repositoryImp"
	reportRepoImp "farmlink/pkg/report/repositoryImp"
	reportSvcImp "farmlink/pkg/report/serviceImp"
	"farmlink/pkg/respond"
	tradeRepoImp "farmlink/pkg/trade/repositoryImp"
	tradeSvcImp "farmlink/pkg/trade/serviceImp"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// 1) Config
	cfg := config.Load()
	loc := cfg.Location()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Repos
	actors := idRepoImp.New(db)
	graph := ownRepoImp.New(db)
	reports := reportRepoImp.New(db)
	trades := tradeRepoImp.New(db)

	// 4) Services
	ids := idSvcImp.New(actors, cfg.TokenSecret, cfg.TokenTTL)
	reportSvc := reportSvcImp.New(reports, loc)
	tradeSvc := tradeSvcImp.New(trades, graph)

	// 5) Controllers
	identityCtrl := idCtrlImp.New(actors, ids)
	agentCtrl := agentCtrlImp.New(graph, actors, reportSvc, tradeSvc)
	farmerCtrl := farmerCtrlImp.New(graph, actors, reportSvc, tradeSvc)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())
	e.HTTPErrorHandler = respond.ErrorHandler(logger)

	// 7) Router + metrics
	m := metrics.New()
	r := router.New(e, ids, identityCtrl, agentCtrl, farmerCtrl, healthCtrl, m)

	// 8) Start
	logger.Info("listening", "port", cfg.Port, "tz", cfg.Timezone)
	if err := r.Start(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
