// Package api contains types for the API responses.
package api

// UploadResponse is returned by the upload intent endpoint.
type UploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	VideoID   string `json:"videoId"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PlaybackResponse is returned by the playback endpoint.
type PlaybackResponse struct {
	PlaybackURL string `json:"playbackUrl"`
	VideoID     string `json:"videoId"`
	ExpiresIn   int    `json:"expiresIn"`
}
