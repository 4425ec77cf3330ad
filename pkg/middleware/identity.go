package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"farmlink/entities"
	"farmlink/pkg/identity/service"
)

const actorKey = "actor"

// Authorize resolves the bearer token into a directory actor and attaches it
// to the request context. Every role surface sits behind this.
func Authorize(ids service.IdentityService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "you are not logged in")
			}
			actor, err := ids.Resolve(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

// Restrict rejects callers whose role does not match.
func Restrict(role entities.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := ActorFrom(c)
			if actor == nil || actor.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "you do not have permission to perform this action")
			}
			return next(c)
		}
	}
}

func ActorFrom(c echo.Context) *entities.Actor {
	actor, _ := c.Get(actorKey).(*entities.Actor)
	return actor
}
