package http

import (
	"context"
	"net/http"
	"time"

	"github.com/DRSN-tech/catalog-service/pkg/logger"
)

const healthCheckTimeout = 2 * time.Second

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	logger logger.Logger
}

func NewHealthHandler(db Pinger, logger logger.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// healthz
//
//	@Summary	Проверка работоспособности
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Failure	503	{object}	HealthResponse
//	@Router		/healthz [get]
func (h *HealthHandler) healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.WithContext(r.Context()).Warnf("health check failed: %v", err)
		WriteSuccess(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Database: "down"})
		return
	}

	WriteSuccess(w, http.StatusOK, HealthResponse{Status: "ok", Database: "up"})
}
