package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/averyhollis/stockroom-backend/api/responses"
	"github.com/averyhollis/stockroom-backend/pkg/config"
	"github.com/averyhollis/stockroom-backend/pkg/db"
	pkgerrors "github.com/averyhollis/stockroom-backend/pkg/errors"
	"github.com/averyhollis/stockroom-backend/pkg/logger"
	"github.com/averyhollis/stockroom-backend/pkg/redis"
)

const readinessTimeout = 3 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Stockroom-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when every wired dependency answers a ping.
// A nil dependency is skipped, so the readiness shape follows the deployment.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Stockroom-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := map[string]string{}
		probe := func(name string, ping func(context.Context) error) bool {
			if err := ping(ctx); err != nil {
				checks[name] = "unreachable"
				err := pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unreachable").WithDetails(checks)
				responses.WriteError(r.Context(), logg, w, err)
				return false
			}
			checks[name] = "ok"
			return true
		}

		if dbP != nil && !probe("db", dbP.Ping) {
			return
		}
		if redisP != nil && !probe("redis", redisP.Ping) {
			return
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
