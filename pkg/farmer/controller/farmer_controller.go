package controller

import "github.com/labstack/echo/v4"

type FarmerController interface {
	ChatUsers(c echo.Context) error
	Farms(c echo.Context) error
	CreateFarm(c echo.Context) error
	SubmitReport(c echo.Context) error
	Reports(c echo.Context) error
	Transactions(c echo.Context) error
}
