package handler

import (
	"net/http"

	"github.com/vfg2006/store-monitor-api/internal/api/handler/router"
	"github.com/vfg2006/store-monitor-api/internal/scheduler"
	"github.com/vfg2006/store-monitor-api/internal/usecases/jobtracking"
	"github.com/vfg2006/store-monitor-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(
	generator reporting.ReportGenerator,
	jobs jobtracking.Store,
	renderer ReportRenderer,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/trigger",
			Method:  http.MethodGet,
			Handler: TriggerReport(generator, jobs),
		},
		{
			Path:    "/v1/reports/:id",
			Method:  http.MethodGet,
			Handler: GetReport(jobs, renderer),
		},
	}
}

func Checkpoint(service *scheduler.CheckpointRebuildService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/checkpoint/rebuild",
			Method:  http.MethodPost,
			Handler: RunCheckpointRebuild(service),
		},
		{
			Path:    "/v1/checkpoint/status",
			Method:  http.MethodGet,
			Handler: GetCheckpointStatus(service),
		},
	}
}
