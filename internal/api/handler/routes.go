package handler

import (
	"net/http"

	"github.com/vfg2006/creator-engagement-api/internal/api/handler/router"
	"github.com/vfg2006/creator-engagement-api/internal/config"
	"github.com/vfg2006/creator-engagement-api/internal/usecases/engagement"
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

func Engagement(cfg *config.Config, service engagement.CampaignEngagementUpdater) []router.Route {
	return []router.Route{
		{
			Path:    "/update-engagement-for-campaign",
			Method:  http.MethodPost,
			Handler: UpdateEngagementForCampaign(cfg, service),
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
