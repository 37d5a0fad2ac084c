package youtubeclient

import (
	"net/url"

	youtubedomain "github.com/vfg2006/creator-engagement-api/infrastructure/integrator/youtube/domain"
)

func (c *YouTubeClient) GetUploadsPlaylistID(channelID string) (string, error) {
	params := url.Values{}
	params.Set("part", "contentDetails")
	params.Set("id", channelID)

	var response youtubedomain.ChannelListResponse
	if err := c.get("/channels", params, &response); err != nil {
		return "", err
	}

	if len(response.Items) == 0 {
		return "", ErrChannelNotFound
	}

	uploads := response.Items[0].ContentDetails.RelatedPlaylists.Uploads
	if uploads == "" {
		return "", ErrChannelNotFound
	}

	return uploads, nil
}
