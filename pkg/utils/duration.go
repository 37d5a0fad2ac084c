package utils

import (
	"github.com/sosodev/duration"
)

// longformMinSeconds is the minimum duration for a video to count as
// long-form content.
const longformMinSeconds = 180

// IsLongform reports whether an ISO-8601 duration string (e.g. "PT4M13S")
// describes long-form content. Malformed durations are treated as
// short-form rather than surfaced as errors.
func IsLongform(durationText string) bool {
	d, err := duration.Parse(durationText)
	if err != nil {
		return false
	}

	return d.ToTimeDuration().Seconds() >= longformMinSeconds
}
