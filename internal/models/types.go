// Package models defines the data models used in the application.
package models

// Video is one row of the videos table. Rows are written once at upload
// intent time and never updated.
type Video struct {
	VideoID   string `dynamodbav:"videoId" json:"videoId" validate:"required,uuid4"`
	Uploader  string `dynamodbav:"uploader" json:"uploader" validate:"required"`
	Timestamp int64  `dynamodbav:"timestamp" json:"timestamp" validate:"gt=0"` // unix seconds
	S3Key     string `dynamodbav:"s3Key" json:"s3Key" validate:"required,startswith=videos/"`
}

// Claims holds the verified identity attributes the gateway authorizer
// attached to the request.
type Claims struct {
	Subject string
	Email   string
}

// EmailOr returns the email claim, or def when the token carried none.
func (c Claims) EmailOr(def string) string {
	if c.Email == "" {
		return def
	}
	return c.Email
}
