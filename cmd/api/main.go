package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-engagement-api/infrastructure/integrator/airtable/airtableclient"
	"github.com/vfg2006/creator-engagement-api/infrastructure/integrator/youtube/youtubeclient"
	"github.com/vfg2006/creator-engagement-api/internal/api"
	"github.com/vfg2006/creator-engagement-api/internal/config"
	"github.com/vfg2006/creator-engagement-api/internal/scheduler"
	"github.com/vfg2006/creator-engagement-api/internal/usecases/engagement"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	airtableClient := airtableclient.NewClient(cfg)
	youtubeClient := youtubeclient.NewClient(cfg)

	engagementService := engagement.NewService(cfg, airtableClient, youtubeClient)

	engagementSyncService := scheduler.NewEngagementSyncService(engagementService, cfg)
	if err := engagementSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start engagement sync scheduler")
	}

	server, err := api.New(cfg, engagementService, engagementSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
