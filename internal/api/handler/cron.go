package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-engagement-api/internal/scheduler"
	"github.com/vfg2006/creator-engagement-api/pkg/apiErrors"
)

const (
	CronJobTypeEngagement = "engagement"
	CronJobTypeAll        = "all"
)

// CronJobServices holds the sync services the cron endpoints can trigger
type CronJobServices struct {
	EngagementSyncService *scheduler.EngagementSyncService
}

// RunCronJob triggers a sync job outside its cron schedule
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeEngagement, CronJobTypeAll:
			if services.EngagementSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Engagement sync service not available", nil)
				return
			}
			services.EngagementSyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: engagement, all", nil)
			return
		}

		logrus.WithField("type", cronType).Info("cron job triggered manually")

		response := map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus reports the state of the sync schedulers
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"engagement": services.EngagementSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
