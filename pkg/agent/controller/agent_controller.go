package controller

import "github.com/labstack/echo/v4"

type AgentController interface {
	Farmers(c echo.Context) error
	FarmsOfFarmer(c echo.Context) error
	ReportToday(c echo.Context) error
	ReportsOfFarm(c echo.Context) error
	AcknowledgeReport(c echo.Context) error
	CreateTrade(c echo.Context) error
	TradesOfFarm(c echo.Context) error
	FarmArea(c echo.Context) error
}
