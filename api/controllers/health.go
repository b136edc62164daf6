package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/lmedina-dev/tastebite-backend/api/responses"
	"github.com/lmedina-dev/tastebite-backend/pkg/config"
	pkgerrors "github.com/lmedina-dev/tastebite-backend/pkg/errors"
	"github.com/lmedina-dev/tastebite-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthLive reports process liveness with a timestamp.
func HealthLive(cfg *config.Config, writer *responses.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-TasteBite-Env", cfg.App.Env)
		writer.JSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// HealthReady reports whether the persistence and cache collaborators answer.
func HealthReady(cfg *config.Config, logg *logger.Logger, writer *responses.Writer, dbP, redisP pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-TasteBite-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		checks := map[string]pinger{"database": dbP, "redis": redisP}
		for name, dep := range checks {
			if dep == nil {
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				if logg != nil {
					logg.Error(logg.WithField(ctx, "dependency", name), "readiness check failed", err)
				}
				writer.Error(r.Context(), w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unavailable"))
				return
			}
		}

		writer.JSON(w, http.StatusOK, map[string]any{
			"status":    "ready",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
