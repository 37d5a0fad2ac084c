package airtableclient

import (
	"net/http"
	"time"

	airtabledomain "github.com/vfg2006/creator-engagement-api/infrastructure/integrator/airtable/domain"
	"github.com/vfg2006/creator-engagement-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks

// Client reads and writes single Airtable records by table name and
// record ID.
type Client interface {
	GetRecord(table string, recordID string) (airtabledomain.Record, error)
	UpdateRecord(table string, recordID string, fields map[string]any) error
}

type AirtableClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &AirtableClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg: cfg,
	}
}
