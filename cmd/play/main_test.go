package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kylejryan/family-cloud-backend/internal/api"
	"github.com/kylejryan/family-cloud-backend/internal/config"
	"github.com/kylejryan/family-cloud-backend/internal/models"
)

const vid = "2f1c7a52-6a3e-4b8e-9a4b-6c1d2e3f4a5b"

type MockPresigner struct {
	mock.Mock
}

func (m *MockPresigner) PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	var o s3.PresignOptions
	for _, fn := range optFns {
		fn(&o)
	}
	args := m.Called(aws.ToString(in.Bucket), aws.ToString(in.Key), o.Expires)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*v4.PresignedHTTPRequest), args.Error(1)
}

type MockVideos struct {
	mock.Mock
}

func (m *MockVideos) Get(ctx context.Context, videoID string) (models.Video, bool, error) {
	args := m.Called(ctx, videoID)
	return args.Get(0).(models.Video), args.Bool(1), args.Error(2)
}

func request(videoID string) events.APIGatewayV2HTTPRequest {
	var req events.APIGatewayV2HTTPRequest
	req.RequestContext.Authorizer = &events.APIGatewayV2HTTPRequestContextAuthorizerDescription{
		JWT: &events.APIGatewayV2HTTPRequestContextAuthorizerJWTDescription{Claims: map[string]string{"sub": "kid-sub"}},
	}
	req.PathParameters = map[string]string{"videoId": videoID}
	return req
}

func newApp(p *MockPresigner, v *MockVideos) *App {
	return &App{env: config.Env{Bucket: "family-cloud-root"}, s3p: p, videos: v}
}

var row = models.Video{VideoID: vid, Uploader: "mum@example.com", Timestamp: 1700000000, S3Key: "videos/" + vid + ".mp4"}

func TestHandler_SignsPlayback(t *testing.T) {
	p, v := new(MockPresigner), new(MockVideos)
	v.On("Get", mock.Anything, vid).Return(row, true, nil).Once()
	p.On("PresignGetObject", "family-cloud-root", "videos/"+vid+".mp4", time.Hour).
		Return(&v4.PresignedHTTPRequest{URL: "https://family-cloud-root.s3.amazonaws.com/videos/" + vid + ".mp4?X-Amz-Expires=3600", Method: http.MethodGet}, nil).Once()

	resp, err := newApp(p, v).handler(context.Background(), request(vid))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.PlaybackResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, vid, body.VideoID)
	assert.Equal(t, 3600, body.ExpiresIn)
	assert.Contains(t, body.PlaybackURL, "videos/"+vid+".mp4")

	p.AssertExpectations(t)
	v.AssertExpectations(t)
}

func TestHandler_BadVideoID(t *testing.T) {
	p, v := new(MockPresigner), new(MockVideos)

	resp, err := newApp(p, v).handler(context.Background(), request("../secrets"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	v.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestHandler_NotFound(t *testing.T) {
	p, v := new(MockPresigner), new(MockVideos)
	v.On("Get", mock.Anything, vid).Return(models.Video{}, false, nil).Once()

	resp, err := newApp(p, v).handler(context.Background(), request(vid))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	p.AssertNotCalled(t, "PresignGetObject", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_StoreError(t *testing.T) {
	p, v := new(MockPresigner), new(MockVideos)
	v.On("Get", mock.Anything, vid).Return(models.Video{}, false, errors.New("unavailable")).Once()

	resp, err := newApp(p, v).handler(context.Background(), request(vid))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHandler_PresignError(t *testing.T) {
	p, v := new(MockPresigner), new(MockVideos)
	v.On("Get", mock.Anything, vid).Return(row, true, nil).Once()
	p.On("PresignGetObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("no credentials")).Once()

	resp, err := newApp(p, v).handler(context.Background(), request(vid))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"presign error"}`, resp.Body)
}

func TestHandler_MissingClaims(t *testing.T) {
	p, v := new(MockPresigner), new(MockVideos)
	req := events.APIGatewayV2HTTPRequest{PathParameters: map[string]string{"videoId": vid}}

	resp, err := newApp(p, v).handler(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
