package handler

import (
	"net/http"

	"github.com/vfg2006/creator-engagement-api/internal/config"
	"github.com/vfg2006/creator-engagement-api/internal/domain"
	"github.com/vfg2006/creator-engagement-api/internal/usecases/engagement"
	"github.com/vfg2006/creator-engagement-api/pkg/apiErrors"
	"github.com/vfg2006/creator-engagement-api/pkg/log"
)

type updateEngagementRequest struct {
	CampaignRecordID  string `json:"campaignRecordId"`
	CampaignTableName string `json:"campaignTableName"`
}

type updateEngagementResponse struct {
	Message          string                    `json:"message"`
	CampaignRecordID string                    `json:"campaignRecordId"`
	Results          []domain.InfluencerResult `json:"results"`
}

// UpdateEngagementForCampaign drives one synchronous engagement update.
// Per-influencer failures are reported in the 200 payload; only a missing
// campaign ID or a failed campaign fetch produce an error status.
func UpdateEngagementForCampaign(cfg *config.Config, service engagement.CampaignEngagementUpdater) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request updateEngagementRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("engagement: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid JSON request body", nil)
			return
		}

		if request.CampaignRecordID == "" {
			logger.Warn("engagement: missing campaignRecordId")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing 'campaignRecordId' in request body", nil)
			return
		}

		campaignTable := request.CampaignTableName
		if campaignTable == "" {
			campaignTable = cfg.Engagement.CampaignTable
		}

		logger.WithFields(log.Fields{
			"campaign_record_id": request.CampaignRecordID,
			"campaign_table":     campaignTable,
		}).Info("engagement: updating engagement for campaign")

		report, err := service.UpdateEngagementForCampaign(campaignTable, request.CampaignRecordID)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_record_id": request.CampaignRecordID,
				"error":              err.Error(),
			}).Error("engagement: failed to fetch campaign record")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Failed to fetch campaign record: "+err.Error(), nil)
			return
		}

		message := "Engagement update complete."
		if len(report.Results) == 0 {
			message = "No linked influencers found for this campaign."
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updateEngagementResponse{
			Message:          message,
			CampaignRecordID: report.CampaignRecordID,
			Results:          report.Results,
		}); err != nil {
			logger.WithError(err).Error("engagement: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
