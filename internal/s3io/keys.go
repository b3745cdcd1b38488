package s3io

import (
	"strings"
)

// Video object keys look like videos/<videoId>.mp4.
const (
	VideoPrefix = "videos/"
	VideoExt    = ".mp4"
)

// VideoKey constructs the S3 key for a given videoID.
func VideoKey(videoID string) string {
	return VideoPrefix + videoID + VideoExt
}

// ParseVideoKey extracts the videoID from an S3 key built by VideoKey.
func ParseVideoKey(key string) (videoID string, ok bool) {
	if !strings.HasPrefix(key, VideoPrefix) || !strings.HasSuffix(key, VideoExt) {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(key, VideoPrefix), VideoExt)
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}
