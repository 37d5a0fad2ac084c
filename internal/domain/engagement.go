package domain

// ResultStatus is the terminal outcome of processing one influencer.
type ResultStatus string

const (
	StatusSuccess ResultStatus = "success"
	StatusSkipped ResultStatus = "skipped"
	StatusFailed  ResultStatus = "failed"
)

// InfluencerResult reports the outcome for a single influencer. Reason is
// only set for skipped and failed entries.
type InfluencerResult struct {
	InfluencerID string       `json:"influencerId"`
	Status       ResultStatus `json:"status"`
	Reason       string       `json:"reason,omitempty"`
}

// EngagementReport aggregates the per-influencer outcomes of one campaign
// update. It is never persisted, only returned to the caller.
type EngagementReport struct {
	CampaignRecordID string             `json:"campaignRecordId"`
	Results          []InfluencerResult `json:"results"`
}

// EngagementAverages holds the rolling long-form averages written back to
// the influencer record.
type EngagementAverages struct {
	Views    int64
	Likes    int64
	Comments int64
}
