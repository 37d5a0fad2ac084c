package engagement

import (
	"errors"
	"time"

	"github.com/vfg2006/creator-engagement-api/infrastructure/integrator/airtable/airtableclient"
	youtubedomain "github.com/vfg2006/creator-engagement-api/infrastructure/integrator/youtube/domain"
	"github.com/vfg2006/creator-engagement-api/infrastructure/integrator/youtube/youtubeclient"
	"github.com/vfg2006/creator-engagement-api/internal/config"
	"github.com/vfg2006/creator-engagement-api/internal/domain"
	"github.com/vfg2006/creator-engagement-api/pkg/log"
	"github.com/vfg2006/creator-engagement-api/pkg/utils"
)

// Service orchestrates the engagement update: table store on one side,
// video platform on the other. Influencers are processed strictly
// sequentially; one influencer's failure never aborts the rest.
type Service struct {
	cfg      *config.Config
	airtable airtableclient.Client
	youtube  youtubeclient.Client
	now      func() time.Time
}

func NewService(
	cfg *config.Config,
	airtable airtableclient.Client,
	youtube youtubeclient.Client,
) CampaignEngagementUpdater {
	return &Service{
		cfg:      cfg,
		airtable: airtable,
		youtube:  youtube,
		now:      time.Now,
	}
}

func (s *Service) UpdateEngagementForCampaign(campaignTable string, campaignRecordID string) (*domain.EngagementReport, error) {
	logger := log.L.WithFields(log.Fields{
		"campaign_table":     campaignTable,
		"campaign_record_id": campaignRecordID,
	})

	campaign, err := s.airtable.GetRecord(campaignTable, campaignRecordID)
	if err != nil {
		logger.WithError(err).Error("engagement: failed to fetch campaign record")
		return nil, err
	}

	report := &domain.EngagementReport{
		CampaignRecordID: campaignRecordID,
		Results:          []domain.InfluencerResult{},
	}

	influencerIDs := campaign.LinkedRecordIDs(s.cfg.Engagement.CreatorLinkField)
	if len(influencerIDs) == 0 {
		logger.Info("engagement: campaign has no linked influencers")
		return report, nil
	}

	cutoff := s.now().UTC().AddDate(0, 0, -s.cfg.Engagement.LookbackDays)
	logger.WithFields(log.Fields{
		"influencers": len(influencerIDs),
		"cutoff":      cutoff.Format(time.RFC3339),
	}).Info("engagement: processing campaign influencers")

	for _, influencerID := range influencerIDs {
		result := s.processInfluencer(influencerID, cutoff)
		report.Results = append(report.Results, result)

		if result.Status != domain.StatusSuccess {
			logger.WithFields(log.Fields{
				"influencer_id": result.InfluencerID,
				"status":        string(result.Status),
				"reason":        result.Reason,
			}).Warn("engagement: influencer not updated")
		}
	}

	logger.WithField("results", len(report.Results)).Info("engagement: campaign update complete")
	return report, nil
}

// processInfluencer runs the per-influencer pipeline to a terminal
// outcome: fetch record, resolve uploads playlist, list recent videos,
// fetch stats, average the long-form ones and write back.
func (s *Service) processInfluencer(influencerID string, cutoff time.Time) domain.InfluencerResult {
	influencer, err := s.airtable.GetRecord(s.cfg.Engagement.InfluencerTable, influencerID)
	if err != nil {
		return failed(influencerID, "Failed to fetch influencer record: "+err.Error())
	}

	channelID := influencer.String(s.cfg.Engagement.ChannelIDField)
	if channelID == "" {
		return skipped(influencerID, "No YouTube Channel ID")
	}

	playlistID, err := s.youtube.GetUploadsPlaylistID(channelID)
	if err != nil {
		if errors.Is(err, youtubeclient.ErrChannelNotFound) {
			return skipped(influencerID, "No uploads playlist")
		}
		return failed(influencerID, "Failed to resolve uploads playlist: "+err.Error())
	}

	videoIDs, err := s.youtube.ListRecentVideoIDs(playlistID, cutoff)
	if err != nil {
		return failed(influencerID, "Failed to list recent videos: "+err.Error())
	}
	if len(videoIDs) == 0 {
		return skipped(influencerID, "No recent videos")
	}

	videos, err := s.youtube.GetVideoDetails(videoIDs)
	if err != nil {
		return failed(influencerID, "Failed to fetch video details: "+err.Error())
	}

	averages, ok := longformAverages(videos)
	if !ok {
		return skipped(influencerID, "No longform videos found")
	}

	fields := map[string]any{
		s.cfg.Engagement.AvgViewsField:    averages.Views,
		s.cfg.Engagement.AvgLikesField:    averages.Likes,
		s.cfg.Engagement.AvgCommentsField: averages.Comments,
	}
	if err := s.airtable.UpdateRecord(s.cfg.Engagement.InfluencerTable, influencerID, fields); err != nil {
		return failed(influencerID, "Failed to update Airtable: "+err.Error())
	}

	return domain.InfluencerResult{
		InfluencerID: influencerID,
		Status:       domain.StatusSuccess,
	}
}

// longformAverages averages views, likes and comments over the long-form
// videos. Integer division matches the original truncating average; the
// second return is false when no video qualifies.
func longformAverages(videos []youtubedomain.Video) (domain.EngagementAverages, bool) {
	var views, likes, comments, count int64

	for _, video := range videos {
		if !utils.IsLongform(video.Duration) {
			continue
		}
		views += video.Views
		likes += video.Likes
		comments += video.Comments
		count++
	}

	if count == 0 {
		return domain.EngagementAverages{}, false
	}

	return domain.EngagementAverages{
		Views:    views / count,
		Likes:    likes / count,
		Comments: comments / count,
	}, true
}

func skipped(influencerID string, reason string) domain.InfluencerResult {
	return domain.InfluencerResult{
		InfluencerID: influencerID,
		Status:       domain.StatusSkipped,
		Reason:       reason,
	}
}

func failed(influencerID string, reason string) domain.InfluencerResult {
	return domain.InfluencerResult{
		InfluencerID: influencerID,
		Status:       domain.StatusFailed,
		Reason:       reason,
	}
}
