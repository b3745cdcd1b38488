// Package ddb provides a simple repository for interacting with DynamoDB for video records.
package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/kylejryan/family-cloud-backend/internal/models"
)

// API is the part of *dynamodb.Client the repo uses.
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Repo wraps a DynamoDB client and table name for video operations.
type Repo struct {
	DB    API
	Table string
}

// Put writes v unconditionally. Video ids are random UUIDs so no
// existence check is made.
func (r *Repo) Put(ctx context.Context, v models.Video) error {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return fmt.Errorf("marshal video %s: %w", v.VideoID, err)
	}
	_, err = r.DB.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &r.Table,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put video %s: %w", v.VideoID, err)
	}
	return nil
}

// Get reads one video by id. ok is false when no row exists.
func (r *Repo) Get(ctx context.Context, videoID string) (v models.Video, ok bool, err error) {
	out, err := r.DB.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &r.Table,
		Key: map[string]types.AttributeValue{
			"videoId": &types.AttributeValueMemberS{Value: videoID},
		},
	})
	if err != nil {
		return v, false, fmt.Errorf("get video %s: %w", videoID, err)
	}
	if len(out.Item) == 0 {
		return v, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &v); err != nil {
		return v, false, fmt.Errorf("unmarshal video %s: %w", videoID, err)
	}
	return v, true, nil
}

// ScanByUploader reads the whole table and keeps rows whose uploader
// equals the given value. All scan pages are consumed; the result is
// never nil.
func (r *Repo) ScanByUploader(ctx context.Context, uploader string) ([]models.Video, error) {
	expr, err := expression.NewBuilder().
		WithFilter(expression.Name("uploader").Equal(expression.Value(uploader))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build filter: %w", err)
	}

	p := dynamodb.NewScanPaginator(r.DB, &dynamodb.ScanInput{
		TableName:                 &r.Table,
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	out := make([]models.Video, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.Table, err)
		}
		var vs []models.Video
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &vs); err != nil {
			return nil, fmt.Errorf("unmarshal videos: %w", err)
		}
		out = append(out, vs...)
	}
	return out, nil
}
