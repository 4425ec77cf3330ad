package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

type HealthCtrl struct {
	db      *gorm.DB
	started time.Time
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl {
	return &HealthCtrl{db: db, started: time.Now()}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), time.Second)
	defer cancel()

	storage := check{OK: true}
	if h.db == nil {
		storage = check{Err: "database handle is nil"}
	} else if sqlDB, err := h.db.DB(); err != nil {
		storage = check{Err: err.Error()}
	} else if err := sqlDB.PingContext(ctx); err != nil {
		storage = check{Err: "ping: " + err.Error()}
	}

	code := http.StatusOK
	if !storage.OK {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, map[string]any{
		"ok":         storage.OK,
		"uptime_sec": int(time.Since(h.started).Seconds()),
		"checks":     map[string]any{"database": storage},
	})
}
