package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmlink/pkg/identity/controller"
	"farmlink/pkg/identity/repository"
	"farmlink/pkg/identity/service"
	"farmlink/pkg/middleware"
	"farmlink/pkg/respond"
)

type identityCtrl struct {
	actors repository.ActorRepository
	ids    service.IdentityService
}

func New(actors repository.ActorRepository, ids service.IdentityService) controller.IdentityController {
	return &identityCtrl{actors: actors, ids: ids}
}

// DevLogin issues a token for a known directory email. Development stand-in
// for the real auth provider.
func (h *identityCtrl) DevLogin(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	actor, err := h.actors.FindByEmail(email)
	if err != nil {
		return err
	}
	token, err := h.ids.IssueToken(actor.ID)
	if err != nil {
		return err
	}
	return respond.OK(c, map[string]any{"token": token, "actor": actor})
}

func (h *identityCtrl) WhoAmI(c echo.Context) error {
	return respond.OK(c, middleware.ActorFrom(c))
}
