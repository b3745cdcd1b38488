// Package main lists the videos whose uploader matches the caller's subject.
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/kylejryan/family-cloud-backend/internal/authz"
	"github.com/kylejryan/family-cloud-backend/internal/awsutil"
	"github.com/kylejryan/family-cloud-backend/internal/config"
	"github.com/kylejryan/family-cloud-backend/internal/ddb"
	"github.com/kylejryan/family-cloud-backend/internal/httpx"
	"github.com/kylejryan/family-cloud-backend/internal/logging"
	"github.com/kylejryan/family-cloud-backend/internal/models"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

type videoScanner interface {
	ScanByUploader(ctx context.Context, uploader string) ([]models.Video, error)
}

// App holds the application state, including configuration and AWS clients.
type App struct {
	env    config.Env
	videos videoScanner
}

// handler returns every row whose uploader equals the caller's subject.
// Uploads record the email as uploader, so the two only meet when a
// user's subject and email coincide.
func (a *App) handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	lg := logging.ForRequest(ctx, req)
	claims, err := authz.FromAPIGWv2(req, a.env.DevBypassAuth)
	if err != nil {
		return httpx.Error(http.StatusUnauthorized, "missing claims")
	}
	sub, err := authz.RequireSubject(claims)
	if err != nil {
		return httpx.Error(http.StatusUnauthorized, "missing user")
	}

	items, err := a.videos.ScanByUploader(ctx, sub)
	if err != nil {
		lg.Error("list failed", "err", err)
		return httpx.Error(http.StatusInternalServerError, "db error")
	}
	if items == nil {
		items = []models.Video{}
	}
	lg.Debug("listed videos", "count", len(items))
	return httpx.JSON(http.StatusOK, items)
}

// main initializes the application and starts the Lambda handler.
func main() {
	env := config.MustLoad()
	logging.Setup(env.AppEnv, env.LogLevel)

	cfg, err := awsutil.Load(context.Background(), env.Region, env.Endpoint)
	if err != nil {
		log.Fatal(err)
	}
	app := &App{env: env, videos: &ddb.Repo{DB: awsutil.NewDynamoDB(cfg), Table: env.Table}}
	lambda.Start(app.handler)
}
