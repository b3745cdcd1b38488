// Package main issues a presigned S3 playback URL for a recorded video.
package main

import (
	"context"
	"log"
	"net/http"

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
)

type videoReader interface {
	Get(ctx context.Context, videoID string) (models.Video, bool, error)
}

// App holds the application state, including configuration and AWS clients.
type App struct {
	env    config.Env
	s3p    s3io.GetPresigner
	videos videoReader
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
	}
	lambda.Start(app.handler)
}

// handler serves GET /play/{videoId}. Any signed-in family member may
// play any recorded video; the key is taken from the stored row.
func (a *App) handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	lg := logging.ForRequest(ctx, req)
	if _, err := authz.FromAPIGWv2(req, a.env.DevBypassAuth); err != nil {
		return httpx.Error(http.StatusUnauthorized, "missing claims")
	}

	vid := req.PathParameters["videoId"]
	if err := validate.VideoID(vid); err != nil {
		return httpx.Error(http.StatusBadRequest, err.Error())
	}

	rec, ok, err := a.videos.Get(ctx, vid)
	if err != nil {
		lg.Error("ddb get failed", "video_id", vid, "err", err)
		return httpx.Error(http.StatusInternalServerError, "db error")
	}
	if !ok {
		return httpx.Error(http.StatusNotFound, "video not found")
	}

	play, err := s3io.PresignGet(ctx, a.s3p, a.env.Bucket, rec.S3Key, s3io.PlaybackTTL)
	if err != nil {
		lg.Error("presign failed", "video_id", vid, "err", err)
		return httpx.Error(http.StatusInternalServerError, "presign error")
	}

	return httpx.JSON(http.StatusOK, api.PlaybackResponse{
		PlaybackURL: play.URL, VideoID: vid, ExpiresIn: int(play.Expires.Seconds()),
	})
}
