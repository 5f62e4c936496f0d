package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/store-monitor-api/internal/domain"
	"github.com/vfg2006/store-monitor-api/internal/usecases/jobtracking"
	"github.com/vfg2006/store-monitor-api/internal/usecases/reporting"
	"github.com/vfg2006/store-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/store-monitor-api/pkg/log"
	"github.com/vfg2006/store-monitor-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReportRenderer carrega o relatório pronto e o converte no CSV final
type ReportRenderer interface {
	LoadReport(ctx context.Context, requestID string) ([]domain.StoreReport, error)
	RenderCSV(reports []domain.StoreReport) string
}

// TriggerReport dispara a geração de um relatório em segundo plano e
// devolve imediatamente o request_id para consulta posterior
func TriggerReport(generator reporting.ReportGenerator, jobs jobtracking.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		requestID, err := utils.GenerateID()
		if err != nil {
			logger.WithError(err).Error("reports: failed to generate request_id")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar o identificador da requisição", nil)
			return
		}

		if err := jobs.Create(r.Context(), requestID); err != nil {
			logger.WithFields(log.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("reports: failed to register report job")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao registrar o job do relatório", nil)
			return
		}

		logger.WithField("request_id", requestID).Info("reports: report generation triggered")

		// A geração roda fora do ciclo de vida da requisição HTTP
		go func() {
			if err := generator.GenerateReport(context.Background(), requestID); err != nil {
				log.L.WithFields(log.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Error("reports: report generation failed")
			}
		}()

		w.Header().Set("Content-Type", "application/json")
		response := map[string]any{
			"status": "success",
			"data": map[string]any{
				"request_id": requestID,
			},
		}

		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("reports: failed to encode trigger response")
		}
	})
}

// GetReport consulta o estado de um job: pendente devolve o aviso de
// processamento, concluído devolve o CSV final
func GetReport(jobs jobtracking.Store, renderer ReportRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		requestID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if requestID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "request_id não informado", nil)
			return
		}

		job, err := jobs.Get(r.Context(), requestID)
		if err != nil {
			logger.WithFields(log.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("reports: failed to look up report job")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar o job do relatório", nil)
			return
		}

		if job == nil {
			logger.WithField("request_id", requestID).Warn("reports: unknown request_id")
			apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "request_id desconhecido", nil)
			return
		}

		if job.State != domain.JobDone {
			w.Header().Set("Content-Type", "application/json")
			response := map[string]any{
				"status": "success",
				"data": map[string]any{
					"information": "task is running",
				},
			}

			if err := json.NewEncoder(w).Encode(response); err != nil {
				logger.WithError(err).Error("reports: failed to encode pending response")
			}
			return
		}

		reports, err := renderer.LoadReport(r.Context(), requestID)
		if err != nil {
			logger.WithFields(log.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("reports: failed to load persisted report")

			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao carregar o relatório", nil)
			return
		}

		logger.WithFields(log.Fields{
			"request_id": requestID,
			"stores":     len(reports),
		}).Info("reports: serving completed report")

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="result.csv"`)

		if _, err := w.Write([]byte(renderer.RenderCSV(reports))); err != nil {
			logger.WithError(err).Error("reports: failed to write csv response")
		}
	})
}
