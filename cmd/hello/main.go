// Package main echoes the authenticated user's email back to them.
package main

import (
	"context"
	"net/http"

	"github.com/kylejryan/family-cloud-backend/internal/authz"
	"github.com/kylejryan/family-cloud-backend/internal/config"
	"github.com/kylejryan/family-cloud-backend/internal/httpx"
	"github.com/kylejryan/family-cloud-backend/internal/logging"
	"github.com/kylejryan/family-cloud-backend/internal/models"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

// App holds the application state.
type App struct {
	env config.Env
}

func main() {
	env := config.MustLoad()
	logging.Setup(env.AppEnv, env.LogLevel)
	app := &App{env: env}
	lambda.Start(app.handler)
}

// handler answers with a greeting naming the caller's email.
func (a *App) handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	lg := logging.ForRequest(ctx, req)
	claims, err := authz.FromAPIGWv2(req, a.env.DevBypassAuth)
	if err != nil {
		lg.Warn("hello: no claims on request")
		return httpx.Error(http.StatusUnauthorized, "missing claims")
	}
	return httpx.Text(http.StatusOK, greeting(claims))
}

func greeting(c models.Claims) string {
	return "Hello " + c.EmailOr("unknown user") + ", your authentication works!"
}
