package youtubeclient

import (
	"net/url"
	"strings"

	youtubedomain "github.com/vfg2006/creator-engagement-api/infrastructure/integrator/youtube/domain"
)

// maxBatchSize is the videos endpoint's limit on IDs per request.
const maxBatchSize = 50

func (c *YouTubeClient) GetVideoDetails(videoIDs []string) ([]youtubedomain.Video, error) {
	var videos []youtubedomain.Video

	for start := 0; start < len(videoIDs); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(videoIDs) {
			end = len(videoIDs)
		}

		params := url.Values{}
		params.Set("part", "contentDetails,statistics")
		params.Set("id", strings.Join(videoIDs[start:end], ","))

		var response youtubedomain.VideoListResponse
		if err := c.get("/videos", params, &response); err != nil {
			// No partial-success path: results from earlier batches are
			// discarded along with the failed one.
			return nil, err
		}

		videos = append(videos, response.Videos()...)
	}

	return videos, nil
}
