package engagement

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	airtabledomain "github.com/vfg2006/creator-engagement-api/infrastructure/integrator/airtable/domain"
	airtablemocks "github.com/vfg2006/creator-engagement-api/infrastructure/integrator/airtable/mocks"
	youtubedomain "github.com/vfg2006/creator-engagement-api/infrastructure/integrator/youtube/domain"
	youtubemocks "github.com/vfg2006/creator-engagement-api/infrastructure/integrator/youtube/mocks"
	"github.com/vfg2006/creator-engagement-api/infrastructure/integrator/youtube/youtubeclient"
	"github.com/vfg2006/creator-engagement-api/internal/config"
	"github.com/vfg2006/creator-engagement-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Engagement: config.Engagement{
			CampaignTable:    "Campaigns",
			InfluencerTable:  "Influencers",
			CreatorLinkField: "Creator",
			ChannelIDField:   "YouTube Channel ID",
			AvgViewsField:    "LGVPV90",
			AvgLikesField:    "LGLPV90",
			AvgCommentsField: "LGCPV90",
			LookbackDays:     90,
		},
	}
}

func campaignRecord(influencerIDs ...string) airtabledomain.Record {
	linked := make([]any, 0, len(influencerIDs))
	for _, id := range influencerIDs {
		linked = append(linked, id)
	}
	return airtabledomain.Record{
		ID:     "recCampaign",
		Fields: map[string]any{"Creator": linked},
	}
}

func influencerRecord(id string, channelID string) airtabledomain.Record {
	fields := map[string]any{}
	if channelID != "" {
		fields["YouTube Channel ID"] = channelID
	}
	return airtabledomain.Record{ID: id, Fields: fields}
}

func TestService_UpdateEngagementForCampaign(t *testing.T) {
	referenceNow := time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)
	expectedCutoff := referenceNow.AddDate(0, 0, -90)

	tests := []struct {
		name     string
		setup    func(airtable *airtablemocks.MockClient, youtube *youtubemocks.MockClient)
		wantErr  bool
		validate func(t *testing.T, report *domain.EngagementReport)
	}{
		{
			name: "campaign fetch failure is a request-level error",
			setup: func(airtable *airtablemocks.MockClient, youtube *youtubemocks.MockClient) {
				airtable.EXPECT().
					GetRecord("Campaigns", "recCampaign").
					Return(airtabledomain.Record{}, errors.New("airtable request failed with status 404 Not Found"))
			},
			wantErr: true,
		},
		{
			name: "campaign without linked influencers yields an empty report",
			setup: func(airtable *airtablemocks.MockClient, youtube *youtubemocks.MockClient) {
				airtable.EXPECT().
					GetRecord("Campaigns", "recCampaign").
					Return(airtabledomain.Record{ID: "recCampaign", Fields: map[string]any{}}, nil)
			},
			validate: func(t *testing.T, report *domain.EngagementReport) {
				assert.Equal(t, "recCampaign", report.CampaignRecordID)
				assert.Empty(t, report.Results)
			},
		},
		{
			name: "influencer without channel id is skipped before any video platform call",
			setup: func(airtable *airtablemocks.MockClient, youtube *youtubemocks.MockClient) {
				airtable.EXPECT().
					GetRecord("Campaigns", "recCampaign").
					Return(campaignRecord("recInf1"), nil)
				airtable.EXPECT().
					GetRecord("Influencers", "recInf1").
					Return(influencerRecord("recInf1", ""), nil)
				// No EXPECT on the youtube mock: any call would fail the test.
			},
			validate: func(t *testing.T, report *domain.EngagementReport) {
				require.Len(t, report.Results, 1)
				assert.Equal(t, domain.StatusSkipped, report.Results[0].Status)
				assert.Equal(t, "No YouTube Channel ID", report.Results[0].Reason)
			},
		},
		{
			name: "unknown channel reports skipped with no uploads playlist",
			setup: func(airtable *airtablemocks.MockClient, youtube *youtubemocks.MockClient) {
				airtable.EXPECT().
					GetRecord("Campaigns", "recCampaign").
					Return(campaignRecord("recInf1"), nil)
				airtable.EXPECT().
					GetRecord("Influencers", "recInf1").
					Return(influencerRecord("recInf1", "UCabc"), nil)
				youtube.EXPECT().
					GetUploadsPlaylistID("UCabc").
					Return("", youtubeclient.ErrChannelNotFound)
			},
			validate: func(t *testing.T, report *domain.EngagementReport) {
				require.Len(t, report.Results, 1)
				assert.Equal(t, domain.StatusSkipped, report.Results[0].Status)
				assert.Equal(t, "No uploads playlist", report.Results[0].Reason)
			},
		},
		{
			name: "no recent uploads reports skipped",
			setup: func(airtable *airtablemocks.MockClient, youtube *youtubemocks.MockClient) {
				airtable.EXPECT().
					GetRecord("Campaigns", "recCampaign").
					Return(campaignRecord("recInf1"), nil)
				airtable.EXPECT().
					GetRecord("Influencers", "recInf1").
					Return(influencerRecord("recInf1", "UCabc"), nil)
				youtube.EXPECT().
					GetUploadsPlaylistID("UCabc").
					Return("UUabc", nil)
				youtube.EXPECT().
					ListRecentVideoIDs("UUabc", expectedCutoff).
					Return(nil, nil)
			},
			validate: func(t *testing.T, report *domain.EngagementReport) {
				require.Len(t, report.Results, 1)
				assert.Equal(t, domain.StatusSkipped, report.Results[0].Status)
				assert.Equal(t, "No recent videos", report.Results[0].Reason)
			},
		},
		{
			name: "only shortform videos reports skipped",
			setup: func(airtable *airtablemocks.MockClient, youtube *youtubemocks.MockClient) {
				airtable.EXPECT().
					GetRecord("Campaigns", "recCampaign").
					Return(campaignRecord("recInf1"), nil)
				airtable.EXPECT().
					GetRecord("Influencers", "recInf1").
					Return(influencerRecord("recInf1", "UCabc"), nil)
				youtube.EXPECT().
					GetUploadsPlaylistID("UCabc").
					Return("UUabc", nil)
				youtube.EXPECT().
					ListRecentVideoIDs("UUabc", expectedCutoff).
					Return([]string{"v1"}, nil)
				youtube.EXPECT().
					GetVideoDetails([]string{"v1"}).
					Return([]youtubedomain.Video{
						{ID: "v1", Duration: "PT45S", Views: 9000, Likes: 900, Comments: 90},
					}, nil)
			},
			validate: func(t *testing.T, report *domain.EngagementReport) {
				require.Len(t, report.Results, 1)
				assert.Equal(t, domain.StatusSkipped, report.Results[0].Status)
				assert.Equal(t, "No longform videos found", report.Results[0].Reason)
			},
		},
		{
			name: "longform averages are written back and shortform videos are ignored",
			setup: func(airtable *airtablemocks.MockClient, youtube *youtubemocks.MockClient) {
				airtable.EXPECT().
					GetRecord("Campaigns", "recCampaign").
					Return(campaignRecord("recInf1"), nil)
				airtable.EXPECT().
					GetRecord("Influencers", "recInf1").
					Return(influencerRecord("recInf1", "UCabc"), nil)
				youtube.EXPECT().
					GetUploadsPlaylistID("UCabc").
					Return("UUabc", nil)
				youtube.EXPECT().
					ListRecentVideoIDs("UUabc", expectedCutoff).
					Return([]string{"v1", "v2", "v3"}, nil)
				youtube.EXPECT().
					GetVideoDetails([]string{"v1", "v2", "v3"}).
					Return([]youtubedomain.Video{
						{ID: "v1", Duration: "PT10M", Views: 100, Likes: 10, Comments: 1},
						{ID: "v2", Duration: "PT4M", Views: 200, Likes: 20, Comments: 3},
						{ID: "v3", Duration: "PT30S", Views: 999999, Likes: 99999, Comments: 9999},
					}, nil)
				airtable.EXPECT().
					UpdateRecord("Influencers", "recInf1", map[string]any{
						"LGVPV90": int64(150),
						"LGLPV90": int64(15),
						"LGCPV90": int64(2),
					}).
					Return(nil)
			},
			validate: func(t *testing.T, report *domain.EngagementReport) {
				require.Len(t, report.Results, 1)
				assert.Equal(t, domain.StatusSuccess, report.Results[0].Status)
				assert.Empty(t, report.Results[0].Reason)
			},
		},
		{
			name: "averages truncate instead of rounding",
			setup: func(airtable *airtablemocks.MockClient, youtube *youtubemocks.MockClient) {
				airtable.EXPECT().
					GetRecord("Campaigns", "recCampaign").
					Return(campaignRecord("recInf1"), nil)
				airtable.EXPECT().
					GetRecord("Influencers", "recInf1").
					Return(influencerRecord("recInf1", "UCabc"), nil)
				youtube.EXPECT().
					GetUploadsPlaylistID("UCabc").
					Return("UUabc", nil)
				youtube.EXPECT().
					ListRecentVideoIDs("UUabc", expectedCutoff).
					Return([]string{"v1", "v2", "v3"}, nil)
				youtube.EXPECT().
					GetVideoDetails([]string{"v1", "v2", "v3"}).
					Return([]youtubedomain.Video{
						{ID: "v1", Duration: "PT5M", Views: 100, Likes: 2, Comments: 2},
						{ID: "v2", Duration: "PT5M", Views: 200, Likes: 2, Comments: 2},
						{ID: "v3", Duration: "PT5M", Views: 201, Likes: 2, Comments: 2},
					}, nil)
				airtable.EXPECT().
					UpdateRecord("Influencers", "recInf1", map[string]any{
						"LGVPV90": int64(167), // floor(501 / 3)
						"LGLPV90": int64(2),
						"LGCPV90": int64(2),
					}).
					Return(nil)
			},
			validate: func(t *testing.T, report *domain.EngagementReport) {
				require.Len(t, report.Results, 1)
				assert.Equal(t, domain.StatusSuccess, report.Results[0].Status)
			},
		},
		{
			name: "update failure reports failed and later influencers still proceed",
			setup: func(airtable *airtablemocks.MockClient, youtube *youtubemocks.MockClient) {
				airtable.EXPECT().
					GetRecord("Campaigns", "recCampaign").
					Return(campaignRecord("recInf1", "recInf2"), nil)

				// First influencer: everything works until the write-back.
				airtable.EXPECT().
					GetRecord("Influencers", "recInf1").
					Return(influencerRecord("recInf1", "UCfirst"), nil)
				youtube.EXPECT().
					GetUploadsPlaylistID("UCfirst").
					Return("UUfirst", nil)
				youtube.EXPECT().
					ListRecentVideoIDs("UUfirst", expectedCutoff).
					Return([]string{"v1"}, nil)
				youtube.EXPECT().
					GetVideoDetails([]string{"v1"}).
					Return([]youtubedomain.Video{
						{ID: "v1", Duration: "PT10M", Views: 500, Likes: 50, Comments: 5},
					}, nil)
				airtable.EXPECT().
					UpdateRecord("Influencers", "recInf1", gomock.Any()).
					Return(errors.New("airtable request failed with status 422 Unprocessable Entity"))

				// Second influencer is unaffected.
				airtable.EXPECT().
					GetRecord("Influencers", "recInf2").
					Return(influencerRecord("recInf2", "UCsecond"), nil)
				youtube.EXPECT().
					GetUploadsPlaylistID("UCsecond").
					Return("UUsecond", nil)
				youtube.EXPECT().
					ListRecentVideoIDs("UUsecond", expectedCutoff).
					Return([]string{"v9"}, nil)
				youtube.EXPECT().
					GetVideoDetails([]string{"v9"}).
					Return([]youtubedomain.Video{
						{ID: "v9", Duration: "PT6M", Views: 300, Likes: 30, Comments: 3},
					}, nil)
				airtable.EXPECT().
					UpdateRecord("Influencers", "recInf2", map[string]any{
						"LGVPV90": int64(300),
						"LGLPV90": int64(30),
						"LGCPV90": int64(3),
					}).
					Return(nil)
			},
			validate: func(t *testing.T, report *domain.EngagementReport) {
				require.Len(t, report.Results, 2)

				assert.Equal(t, "recInf1", report.Results[0].InfluencerID)
				assert.Equal(t, domain.StatusFailed, report.Results[0].Status)
				assert.Contains(t, report.Results[0].Reason, "Failed to update Airtable")

				assert.Equal(t, "recInf2", report.Results[1].InfluencerID)
				assert.Equal(t, domain.StatusSuccess, report.Results[1].Status)
			},
		},
		{
			name: "influencer fetch failure reports failed without aborting",
			setup: func(airtable *airtablemocks.MockClient, youtube *youtubemocks.MockClient) {
				airtable.EXPECT().
					GetRecord("Campaigns", "recCampaign").
					Return(campaignRecord("recInf1"), nil)
				airtable.EXPECT().
					GetRecord("Influencers", "recInf1").
					Return(airtabledomain.Record{}, errors.New("airtable request failed with status 500 Internal Server Error"))
			},
			validate: func(t *testing.T, report *domain.EngagementReport) {
				require.Len(t, report.Results, 1)
				assert.Equal(t, domain.StatusFailed, report.Results[0].Status)
				assert.Contains(t, report.Results[0].Reason, "Failed to fetch influencer record")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAirtable := airtablemocks.NewMockClient(ctrl)
			mockYoutube := youtubemocks.NewMockClient(ctrl)
			tt.setup(mockAirtable, mockYoutube)

			service := &Service{
				cfg:      testConfig(),
				airtable: mockAirtable,
				youtube:  mockYoutube,
				now:      func() time.Time { return referenceNow },
			}

			report, err := service.UpdateEngagementForCampaign("Campaigns", "recCampaign")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, report)
			tt.validate(t, report)
		})
	}
}

func TestLongformAverages(t *testing.T) {
	t.Run("no longform videos", func(t *testing.T) {
		_, ok := longformAverages([]youtubedomain.Video{
			{Duration: "PT2M59S", Views: 100},
			{Duration: "not-a-duration", Views: 100},
		})
		assert.False(t, ok)
	})

	t.Run("boundary duration counts as longform", func(t *testing.T) {
		averages, ok := longformAverages([]youtubedomain.Video{
			{Duration: "PT3M0S", Views: 100, Likes: 10, Comments: 1},
		})
		require.True(t, ok)
		assert.Equal(t, int64(100), averages.Views)
		assert.Equal(t, int64(10), averages.Likes)
		assert.Equal(t, int64(1), averages.Comments)
	})
}
