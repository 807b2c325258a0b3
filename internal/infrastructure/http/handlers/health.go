// Package handlers holds the operational HTTP endpoints that sit outside the
// menu API surface.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const checkTimeout = 3 * time.Second

// checkFunc pings one backing dependency.
type checkFunc func(ctx context.Context) error

// HealthHandler serves the liveness and readiness probes. Liveness only
// confirms the process answers; readiness pings every registered dependency.
type HealthHandler struct {
	checks map[string]checkFunc
}

// NewHealthHandler wires readiness checks for MongoDB and Redis.
func NewHealthHandler(db *mongo.Database, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{
		checks: map[string]checkFunc{
			"mongodb": func(ctx context.Context) error {
				return db.Client().Ping(ctx, nil)
			},
			"redis": func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			},
		},
	}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type readinessResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), checkTimeout)
	defer cancel()

	resp := readinessResponse{
		Status:       "ok",
		Dependencies: make(map[string]string, len(h.checks)),
	}
	code := http.StatusOK

	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			resp.Dependencies[name] = err.Error()
			resp.Status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Dependencies[name] = "ok"
	}

	return c.JSON(code, resp)
}
