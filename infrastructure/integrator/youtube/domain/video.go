package domain

import (
	"strconv"
	"time"
)

// Video is the per-video summary the engagement pipeline works with:
// the raw ISO-8601 duration plus the three engagement counters.
type Video struct {
	ID       string
	Duration string
	Views    int64
	Likes    int64
	Comments int64
}

// ChannelListResponse models the channels endpoint with part=contentDetails.
type ChannelListResponse struct {
	Items []struct {
		ContentDetails struct {
			RelatedPlaylists struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// PlaylistItemListResponse models one page of the playlistItems endpoint.
type PlaylistItemListResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		ContentDetails struct {
			VideoID          string    `json:"videoId"`
			VideoPublishedAt time.Time `json:"videoPublishedAt"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// VideoListResponse models the videos endpoint with
// part=contentDetails,statistics. Statistics arrive as decimal strings.
type VideoListResponse struct {
	Items []struct {
		ID             string `json:"id"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// Videos converts the API items into Video summaries. Absent or malformed
// counters default to 0; the video is kept either way.
func (r VideoListResponse) Videos() []Video {
	videos := make([]Video, 0, len(r.Items))
	for _, item := range r.Items {
		videos = append(videos, Video{
			ID:       item.ID,
			Duration: item.ContentDetails.Duration,
			Views:    parseCount(item.Statistics.ViewCount),
			Likes:    parseCount(item.Statistics.LikeCount),
			Comments: parseCount(item.Statistics.CommentCount),
		})
	}
	return videos
}

func parseCount(value string) int64 {
	count, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return count
}
