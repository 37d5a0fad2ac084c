package youtubeclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/creator-engagement-api/infrastructure/integrator/upstream"
	youtubedomain "github.com/vfg2006/creator-engagement-api/infrastructure/integrator/youtube/domain"
	"github.com/vfg2006/creator-engagement-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks

// ErrChannelNotFound is returned when the channels endpoint has no entry
// for the requested channel ID.
var ErrChannelNotFound = errors.New("youtube channel not found")

const serviceName = "youtube"

// Client wraps the three YouTube Data API operations the engagement
// pipeline needs.
type Client interface {
	// GetUploadsPlaylistID resolves a channel to its uploads playlist,
	// returning ErrChannelNotFound when the channel does not exist.
	GetUploadsPlaylistID(channelID string) (string, error)

	// ListRecentVideoIDs pages through the playlist collecting the IDs of
	// videos published at or after cutoff.
	ListRecentVideoIDs(playlistID string, cutoff time.Time) ([]string, error)

	// GetVideoDetails fetches duration and statistics for the given
	// videos, batching requests at the API's 50-ID limit.
	GetVideoDetails(videoIDs []string) ([]youtubedomain.Video, error)
}

type YouTubeClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &YouTubeClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg: cfg,
	}
}

// get performs an authenticated GET against an API endpoint and decodes
// the JSON response into out.
func (c *YouTubeClient) get(endpoint string, params url.Values, out any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	params.Set("key", c.cfg.YouTube.APIKey)
	requestURL := c.cfg.YouTube.URL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return errors.Wrap(err, "creating youtube request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "executing youtube request")
	}
	defer resp.Body.Close()

	if !upstream.IsSuccess(resp.StatusCode) {
		return upstream.FromResponse(serviceName, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decoding youtube response")
	}

	return nil
}
