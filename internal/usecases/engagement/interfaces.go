package engagement

import (
	"github.com/vfg2006/creator-engagement-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/engagement_mock.go -package=mocks

// CampaignEngagementUpdater recomputes rolling long-form engagement
// averages for every influencer linked to a campaign and writes them back
// to the table store.
type CampaignEngagementUpdater interface {
	// UpdateEngagementForCampaign processes the campaign's influencers
	// sequentially and returns one result per influencer. It only errors
	// when the campaign record itself cannot be fetched; per-influencer
	// failures are captured in the report instead.
	UpdateEngagementForCampaign(campaignTable string, campaignRecordID string) (*domain.EngagementReport, error)
}
