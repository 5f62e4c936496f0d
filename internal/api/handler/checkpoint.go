package handler

import (
	"net/http"

	"github.com/vfg2006/store-monitor-api/internal/scheduler"
	"github.com/vfg2006/store-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/store-monitor-api/pkg/log"
)

// RunCheckpointRebuild dispara manualmente uma reconstrução do checkpoint
func RunCheckpointRebuild(service *scheduler.CheckpointRebuildService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("checkpoint: manual rebuild requested")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reconstrução do checkpoint não disponível", nil)
			return
		}

		service.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		response := map[string]any{
			"message": "Reconstrução do checkpoint iniciada com sucesso",
		}

		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("checkpoint: failed to encode rebuild response")
		}
	})
}

// GetCheckpointStatus retorna o status do agendador de reconstrução
func GetCheckpointStatus(service *scheduler.CheckpointRebuildService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reconstrução do checkpoint não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.GetStatus()); err != nil {
			logger.WithError(err).Error("checkpoint: failed to encode status response")
		}
	})
}
