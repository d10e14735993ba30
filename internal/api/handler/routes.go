package handler

import (
	"net/http"

	"github.com/kontenflow/kontenflow-api/internal/api/handler/router"
	"github.com/kontenflow/kontenflow-api/internal/usecases/content"
	"github.com/kontenflow/kontenflow-api/internal/usecases/sweetspot"
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

func Content(service content.ContentService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/content",
			Method:  http.MethodGet,
			Handler: ListContentItems(service),
		},
		{
			Path:    "/v1/content",
			Method:  http.MethodPost,
			Handler: CreateContentItem(service),
		},
		{
			Path:    "/v1/content/:id",
			Method:  http.MethodGet,
			Handler: GetContentItem(service),
		},
		{
			Path:    "/v1/content/:id",
			Method:  http.MethodPut,
			Handler: UpdateContentItem(service),
		},
		{
			Path:    "/v1/content/:id",
			Method:  http.MethodDelete,
			Handler: DeleteContentItem(service),
		},
	}
}

func SweetSpot(service sweetspot.SweetSpotService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sweetspot/entries",
			Method:  http.MethodGet,
			Handler: ListSweetSpotEntries(service),
		},
		{
			Path:    "/v1/sweetspot/entries",
			Method:  http.MethodPost,
			Handler: CreateSweetSpotEntry(service),
		},
		{
			Path:    "/v1/sweetspot/entries/:id",
			Method:  http.MethodGet,
			Handler: GetSweetSpotEntry(service),
		},
		{
			Path:    "/v1/sweetspot/entries/:id",
			Method:  http.MethodPut,
			Handler: UpdateSweetSpotEntry(service),
		},
		{
			Path:    "/v1/sweetspot/entries/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSweetSpotEntry(service),
		},
		{
			Path:    "/v1/sweetspot/settings",
			Method:  http.MethodGet,
			Handler: GetSweetSpotSettings(service),
		},
		{
			Path:    "/v1/sweetspot/settings",
			Method:  http.MethodPut,
			Handler: UpdateSweetSpotSettings(service),
		},
		{
			Path:    "/v1/sweetspot/analysis",
			Method:  http.MethodGet,
			Handler: GetSweetSpotAnalysis(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
