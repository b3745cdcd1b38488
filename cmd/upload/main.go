// Package main issues a presigned S3 upload URL and records the video's metadata.
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/kylejryan/family-cloud-backend/internal/api"
	"github.com/kylejryan/family-cloud-backend/internal/authz"
	"github.com/kylejryan/family-cloud-backend/internal/awsutil"
	"github.com/kylejryan/family-cloud-backend/internal/config"
	"github.com/kylejryan/family-cloud-backend/internal/ddb"
	"github.com/kylejryan/family-cloud-backend/internal/httpx"
	"github.com/kylejryan/family-cloud-backend/internal/logging"
	"github.com/kylejryan/family-cloud-backend/internal/models"
	"github.com/kylejryan/family-cloud-backend/internal/s3io"
	"github.com/kylejryan/family-cloud-backend/internal/validate"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"
)

// videoWriter stores one video row.
type videoWriter interface {
	Put(ctx context.Context, v models.Video) error
}

// App holds the application state, including configuration and AWS clients.
type App struct {
	env    config.Env
	s3p    s3io.Presigner
	videos videoWriter
	newID  func() string
	now    func() time.Time
}

func main() {
	env := config.MustLoad()
	logging.Setup(env.AppEnv, env.LogLevel)

	cfg, err := awsutil.Load(context.Background(), env.Region, env.Endpoint)
	if err != nil {
		log.Fatal(err)
	}

	app := &App{
		env:    env,
		s3p:    awsutil.NewPresigner(cfg, env.Endpoint),
		videos: &ddb.Repo{DB: awsutil.NewDynamoDB(cfg), Table: env.Table},
		newID:  uuid.NewString,
		now:    time.Now,
	}
	lambda.Start(app.handler)
}

// handler presigns a PUT for a new video key, then writes its metadata row.
// The row is written only once signing has succeeded.
func (a *App) handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	lg := logging.ForRequest(ctx, req)
	claims, err := authz.FromAPIGWv2(req, a.env.DevBypassAuth)
	if err != nil {
		return httpx.Error(http.StatusUnauthorized, "missing claims")
	}

	vid := a.newID()
	key := s3io.VideoKey(vid)

	up, err := s3io.PresignPut(ctx, a.s3p, a.env.Bucket, key, s3io.UploadTTL)
	if err != nil {
		lg.Error("presign failed", "video_id", vid, "err", err)
		return httpx.Error(http.StatusInternalServerError, "presign error")
	}

	rec := models.Video{
		VideoID:   vid,
		Uploader:  claims.EmailOr("unknown"),
		Timestamp: a.now().Unix(),
		S3Key:     key,
	}
	if err := validate.Video(rec); err != nil {
		lg.Error("bad video record", "video_id", vid, "err", err)
		return httpx.Error(http.StatusInternalServerError, "db error")
	}
	// No compensation: if this fails the caller never sees the URL, which
	// simply expires.
	if err := a.videos.Put(ctx, rec); err != nil {
		lg.Error("ddb put failed", "video_id", vid, "err", err)
		return httpx.Error(http.StatusInternalServerError, "db error")
	}

	lg.Info("upload issued", "video_id", vid, "s3_key", key, "method", up.Method)
	return httpx.JSON(http.StatusOK, api.UploadResponse{UploadURL: up.URL, VideoID: vid})
}
