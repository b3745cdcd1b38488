// Package s3io provides utilities for working with S3, including presigning URLs.
package s3io

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// How long signed URLs stay valid.
const (
	UploadTTL   = time.Hour
	PlaybackTTL = time.Hour
)

// Presigner defines the interface for presigning S3 requests.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// GetPresigner defines the interface for presigning S3 reads.
type GetPresigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// PresignedURL is a signed request for exactly one key.
type PresignedURL struct {
	URL     string
	Method  string
	Expires time.Duration
}

// PresignPut signs a PUT of bucket/key valid for ttl. Nothing beyond the
// bucket and key is bound into the signature, so any content type may be sent.
func PresignPut(ctx context.Context, p Presigner, bucket, key string, ttl time.Duration) (PresignedURL, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}

	req, err := p.PresignPutObject(ctx, input, func(o *s3.PresignOptions) { o.Expires = ttl })
	if err != nil {
		return PresignedURL{}, fmt.Errorf("presign put %s: %w", key, err)
	}
	return PresignedURL{URL: req.URL, Method: req.Method, Expires: ttl}, nil
}

// PresignGet signs a GET of bucket/key valid for ttl.
func PresignGet(ctx context.Context, p GetPresigner, bucket, key string, ttl time.Duration) (PresignedURL, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}

	req, err := p.PresignGetObject(ctx, input, func(o *s3.PresignOptions) { o.Expires = ttl })
	if err != nil {
		return PresignedURL{}, fmt.Errorf("presign get %s: %w", key, err)
	}
	return PresignedURL{URL: req.URL, Method: req.Method, Expires: ttl}, nil
}
