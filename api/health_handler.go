package api

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/demosite/blogshop-backend/cache"
	"github.com/demosite/blogshop-backend/database"
)

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	db          database.Database
	cacheClient *redis.Client
	startupTime time.Time
}

func newHealthHandler(db database.Database, cacheClient *redis.Client, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		db:          db,
		cacheClient: cacheClient,
		startupTime: startupTime,
	}
}

// health reports connectivity of the database and cache backends. The cache
// is optional, so a failed ping degrades the report without failing it.
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"status": "ok",
			"uptime": time.Since(h.startupTime).String(),
		}

		if err := h.db.Ping(r.Context()); err != nil {
			h.logger.Error().Err(err).Msg("database health check failed")
			status["status"] = "degraded"
			status["database"] = "unreachable"
		} else {
			status["database"] = "ok"
		}

		if h.cacheClient != nil {
			if err := cache.Ping(r.Context(), h.cacheClient); err != nil {
				h.logger.Warn().Err(err).Msg("cache health check failed")
				status["cache"] = "unreachable"
			} else {
				status["cache"] = "ok"
			}
		}

		if status["status"] != "ok" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		h.responder.WriteJSON(w, status)
	}
}
