package application

import (
	"context"

	"github.com/alorle/ace-launcher/internal/port/driven"
)

// HealthService orchestrates health checks for the application and its dependencies.
type HealthService struct {
	db     driven.SettingsStore
	engine driven.AceStreamEngine
}

// NewHealthService creates a new health check service.
func NewHealthService(db driven.SettingsStore, engine driven.AceStreamEngine) *HealthService {
	return &HealthService{
		db:     db,
		engine: engine,
	}
}

// ComponentHealth represents the health status of a single component.
type ComponentHealth struct {
	Status string // "ok" or "error"
	Error  string // empty if status is "ok", otherwise contains error message
}

// HealthStatus represents the overall health status of the application.
type HealthStatus struct {
	Status          string          // "ok" if all components are healthy, "degraded" otherwise
	DB              ComponentHealth // settings store health
	AceStreamEngine ComponentHealth // acestream engine health
}

// Check performs health checks on all dependencies.
// An unreachable engine degrades the status: channels can still be browsed but
// not played.
func (s *HealthService) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status: "ok",
		DB:     check(ctx, s.db.Ping),
	}

	status.AceStreamEngine = check(ctx, s.engine.Ping)

	if status.DB.Status != "ok" || status.AceStreamEngine.Status != "ok" {
		status.Status = "degraded"
	}

	return status
}

func check(ctx context.Context, ping func(context.Context) error) ComponentHealth {
	if err := ping(ctx); err != nil {
		return ComponentHealth{Status: "error", Error: err.Error()}
	}
	return ComponentHealth{Status: "ok"}
}
