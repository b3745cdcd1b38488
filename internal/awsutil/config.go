// Package awsutil builds AWS clients, pointing them at LocalStack when a
// custom endpoint is configured.
package awsutil

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Load loads the AWS configuration. A non-empty endpoint overrides the
// service endpoints.
func Load(ctx context.Context, region, endpoint string) (aws.Config, error) {
	cfg, err := awsCfg.LoadDefaultConfig(ctx, awsCfg.WithRegion(region))
	if err != nil {
		return aws.Config{}, err
	}
	if endpoint != "" {
		cfg.BaseEndpoint = aws.String(endpoint)
	}
	return cfg, nil
}

// NewS3 returns an S3 client; path-style addressing is used against a
// custom endpoint since LocalStack has no per-bucket DNS.
func NewS3(cfg aws.Config, endpoint string) *s3.Client {
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.UsePathStyle = true
		}
	})
}

// NewPresigner returns a presign client for uploads and playback.
func NewPresigner(cfg aws.Config, endpoint string) *s3.PresignClient {
	return s3.NewPresignClient(NewS3(cfg, endpoint))
}

// NewDynamoDB returns a DynamoDB client.
func NewDynamoDB(cfg aws.Config) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg)
}
