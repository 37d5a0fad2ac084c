package youtubeclient

import (
	"net/url"
	"strconv"
	"time"

	youtubedomain "github.com/vfg2006/creator-engagement-api/infrastructure/integrator/youtube/domain"
)

// maxPageSize is the largest page the playlistItems endpoint serves.
const maxPageSize = 50

func (c *YouTubeClient) ListRecentVideoIDs(playlistID string, cutoff time.Time) ([]string, error) {
	var videoIDs []string
	pageToken := ""

	for {
		params := url.Values{}
		params.Set("part", "contentDetails")
		params.Set("playlistId", playlistID)
		params.Set("maxResults", strconv.Itoa(maxPageSize))
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var page youtubedomain.PlaylistItemListResponse
		if err := c.get("/playlistItems", params, &page); err != nil {
			return nil, err
		}

		foundRecent := false
		for _, item := range page.Items {
			if !item.ContentDetails.VideoPublishedAt.Before(cutoff) {
				videoIDs = append(videoIDs, item.ContentDetails.VideoID)
				foundRecent = true
			}
		}

		// Uploads playlists are served newest first: a page with no
		// qualifying items means every remaining page is older than the
		// cutoff, so stop even when a next-page token exists.
		if !foundRecent {
			break
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	return videoIDs, nil
}
