package airtableclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	airtabledomain "github.com/vfg2006/creator-engagement-api/infrastructure/integrator/airtable/domain"
	"github.com/vfg2006/creator-engagement-api/infrastructure/integrator/upstream"
)

const serviceName = "airtable"

// GetRecord fetches a single record. Any non-success upstream status is
// surfaced as an *upstream.Error carrying status and body.
func (c *AirtableClient) GetRecord(table string, recordID string) (airtabledomain.Record, error) {
	var record airtabledomain.Record

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.recordURL(table, recordID), nil)
	if err != nil {
		return record, errors.Wrap(err, "creating airtable request")
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return record, errors.Wrap(err, "executing airtable request")
	}
	defer resp.Body.Close()

	if !upstream.IsSuccess(resp.StatusCode) {
		return record, upstream.FromResponse(serviceName, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return record, errors.Wrap(err, "decoding airtable response")
	}

	return record, nil
}

// UpdateRecord issues a partial update: only the given fields change,
// everything else on the record is left untouched.
func (c *AirtableClient) UpdateRecord(table string, recordID string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	payload, err := json.Marshal(map[string]any{"fields": fields})
	if err != nil {
		return errors.Wrap(err, "encoding airtable update payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.recordURL(table, recordID), bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "creating airtable request")
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "executing airtable request")
	}
	defer resp.Body.Close()

	if !upstream.IsSuccess(resp.StatusCode) {
		return upstream.FromResponse(serviceName, resp)
	}

	return nil
}

func (c *AirtableClient) recordURL(table string, recordID string) string {
	return fmt.Sprintf("%s/%s/%s", c.cfg.Airtable.URL, url.PathEscape(table), url.PathEscape(recordID))
}

func (c *AirtableClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.cfg.Airtable.APIKey)
	req.Header.Set("Content-Type", "application/json")
}
