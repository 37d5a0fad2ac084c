package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-engagement-api/internal/config"
	"github.com/vfg2006/creator-engagement-api/internal/domain"
	"github.com/vfg2006/creator-engagement-api/internal/usecases/engagement"
)

// EngagementSyncConfig holds the scheduler settings for the periodic
// engagement refresh.
type EngagementSyncConfig struct {
	CronSchedule        string
	CampaignRecordIDs   []string
	RequestDelaySeconds int
	SyncEnabled         bool
}

// EngagementSyncService periodically re-runs the engagement update for a
// configured list of campaigns. Disabled by default; when disabled the
// service is inert and the synchronous endpoint is the only entry point.
type EngagementSyncService struct {
	scheduler           *gocron.Scheduler
	config              EngagementSyncConfig
	appConfig           *config.Config
	engagementService   engagement.CampaignEngagementUpdater
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewEngagementSyncService(
	engagementService engagement.CampaignEngagementUpdater,
	appConfig *config.Config,
) *EngagementSyncService {
	syncConfig := EngagementSyncConfig{
		CronSchedule:        appConfig.EngagementSync.CronSchedule,
		CampaignRecordIDs:   appConfig.EngagementSync.CampaignRecordIDs,
		RequestDelaySeconds: appConfig.EngagementSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.EngagementSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"campaigns":             len(syncConfig.CampaignRecordIDs),
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("engagement sync scheduler configuration loaded")

	return &EngagementSyncService{
		scheduler:         gocron.NewScheduler(time.Local),
		config:            syncConfig,
		appConfig:         appConfig,
		engagementService: engagementService,
	}
}

// Start schedules the sync and runs the scheduler until the context is
// cancelled. A disabled sync is a no-op.
func (s *EngagementSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("engagement sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting engagement sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllCampaigns()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule engagement sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping engagement sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllCampaigns runs one engagement update per configured campaign.
// Overlapping runs are skipped rather than queued.
func (s *EngagementSyncService) syncAllCampaigns() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("engagement sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	runID, _ := gonanoid.New(10)
	logger := logrus.WithField("run_id", runID)

	if len(s.config.CampaignRecordIDs) == 0 {
		logger.Info("no campaigns configured for engagement sync")
		return
	}

	logger.WithField("campaigns", len(s.config.CampaignRecordIDs)).Info("starting engagement sync run")

	for _, campaignRecordID := range s.config.CampaignRecordIDs {
		report, err := s.engagementService.UpdateEngagementForCampaign(
			s.appConfig.Engagement.CampaignTable,
			campaignRecordID,
		)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"campaign_record_id": campaignRecordID,
				"error":              err.Error(),
			}).Error("engagement sync failed for campaign")
		} else {
			succeeded, skippedCount, failedCount := countResults(report.Results)
			logger.WithFields(logrus.Fields{
				"campaign_record_id": campaignRecordID,
				"success":            succeeded,
				"skipped":            skippedCount,
				"failed":             failedCount,
			}).Info("engagement sync finished for campaign")
		}

		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	s.lastSyncCompletedAt = time.Now()
	logger.WithField("duration", time.Since(startTime).String()).Info("engagement sync run complete")
}

func countResults(results []domain.InfluencerResult) (succeeded, skippedCount, failedCount int) {
	for _, result := range results {
		switch result.Status {
		case domain.StatusSuccess:
			succeeded++
		case domain.StatusSkipped:
			skippedCount++
		case domain.StatusFailed:
			failedCount++
		}
	}
	return succeeded, skippedCount, failedCount
}

// TriggerManualSync starts a sync run outside the cron schedule.
func (s *EngagementSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("engagement sync already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("starting manual engagement sync")
	go s.syncAllCampaigns()
}

// GetStatus reports the scheduler state for the cron status endpoint.
func (s *EngagementSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_campaigns":         len(s.config.CampaignRecordIDs),
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
