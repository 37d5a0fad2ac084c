package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Airtable       Airtable       `mapstructure:",squash"`
	YouTube        YouTube        `mapstructure:",squash"`
	Engagement     Engagement     `mapstructure:",squash"`
	EngagementSync EngagementSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Airtable struct {
	BaseURL string `mapstructure:"airtable_base_url"`
	APIKey  string `mapstructure:"airtable_api_key"`
	BaseID  string `mapstructure:"airtable_base_id"`
	URL     string `mapstructure:"-"`
}

type YouTube struct {
	URL    string `mapstructure:"youtube_api_url"`
	APIKey string `mapstructure:"youtube_api_key"`
}

// Engagement holds the Airtable table and field names the engagement
// pipeline reads and writes. The defaults match the production base; any
// of them can be overridden per environment.
type Engagement struct {
	CampaignTable    string `mapstructure:"engagement_campaign_table"`
	InfluencerTable  string `mapstructure:"engagement_influencer_table"`
	CreatorLinkField string `mapstructure:"engagement_creator_link_field"`
	ChannelIDField   string `mapstructure:"engagement_channel_id_field"`
	AvgViewsField    string `mapstructure:"engagement_avg_views_field"`
	AvgLikesField    string `mapstructure:"engagement_avg_likes_field"`
	AvgCommentsField string `mapstructure:"engagement_avg_comments_field"`
	LookbackDays     int    `mapstructure:"engagement_lookback_days"`
}

type EngagementSync struct {
	CronSchedule        string   `mapstructure:"engagement_sync_cron"`
	CampaignRecordIDs   []string `mapstructure:"engagement_sync_campaign_record_ids"`
	RequestDelaySeconds int      `mapstructure:"engagement_sync_request_delay_seconds"`
	Enabled             bool     `mapstructure:"engagement_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("AIRTABLE_BASE_URL", "https://api.airtable.com/v0")
	viper.SetDefault("AIRTABLE_API_KEY", "")
	viper.SetDefault("AIRTABLE_BASE_ID", "")

	viper.SetDefault("YOUTUBE_API_URL", "https://www.googleapis.com/youtube/v3")
	viper.SetDefault("YOUTUBE_API_KEY", "")

	viper.SetDefault("ENGAGEMENT_CAMPAIGN_TABLE", "Campaigns")
	viper.SetDefault("ENGAGEMENT_INFLUENCER_TABLE", "Influencers")
	viper.SetDefault("ENGAGEMENT_CREATOR_LINK_FIELD", "Creator")
	viper.SetDefault("ENGAGEMENT_CHANNEL_ID_FIELD", "YouTube Channel ID")
	viper.SetDefault("ENGAGEMENT_AVG_VIEWS_FIELD", "LGVPV90")
	viper.SetDefault("ENGAGEMENT_AVG_LIKES_FIELD", "LGLPV90")
	viper.SetDefault("ENGAGEMENT_AVG_COMMENTS_FIELD", "LGCPV90")
	viper.SetDefault("ENGAGEMENT_LOOKBACK_DAYS", 90)

	viper.SetDefault("ENGAGEMENT_SYNC_CRON", "0 6 * * *")
	viper.SetDefault("ENGAGEMENT_SYNC_CAMPAIGN_RECORD_IDS", "")
	viper.SetDefault("ENGAGEMENT_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("ENGAGEMENT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("No .env file read by viper, relying on environment variables: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Airtable.URL = fmt.Sprintf("%s/%s", config.Airtable.BaseURL, config.Airtable.BaseID)
	config.EngagementSync.CampaignRecordIDs = cleanIDList(config.EngagementSync.CampaignRecordIDs)

	return config, nil
}

// validate rejects a startup with missing upstream credentials. Absence of
// any of these keys is fatal at process start, never per request.
func (c *Config) validate() error {
	var missing []string

	if c.Airtable.APIKey == "" {
		missing = append(missing, "AIRTABLE_API_KEY")
	}
	if c.Airtable.BaseID == "" {
		missing = append(missing, "AIRTABLE_BASE_ID")
	}
	if c.YouTube.APIKey == "" {
		missing = append(missing, "YOUTUBE_API_KEY")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing one or more environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// cleanIDList drops the empty entries the comma-split hook produces for an
// unset list.
func cleanIDList(ids []string) []string {
	cleaned := make([]string, 0, len(ids))
	for _, id := range ids {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Loaded .env from: ", location)
			return
		}
	}

	logrus.Info("No .env file found, relying on environment variables")
}
