// Package authz turns the claims attached by the API Gateway JWT
// authorizer into a typed models.Claims.
package authz

import (
	"errors"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/kylejryan/family-cloud-backend/internal/models"
	"github.com/kylejryan/family-cloud-backend/internal/validate"
)

// ErrUnauthorized is returned when the request carries no usable identity.
var ErrUnauthorized = errors.New("unauthorized")

const (
	devSubHeader   = "x-user-sub"
	devEmailHeader = "x-user-email"
)

// headerLookup returns the value of a header key from a map.
func headerLookup(h map[string]string, key string) string {
	if len(h) == 0 {
		return ""
	}
	lk := strings.ToLower(key)
	for k, v := range h {
		if strings.ToLower(k) == lk {
			return v
		}
	}
	return ""
}

// FromAPIGWv2 reads the verified claims of an HTTP API (v2) request. The
// token is already verified upstream; nothing here re-checks it.
func FromAPIGWv2(req events.APIGatewayV2HTTPRequest, devBypass bool) (models.Claims, error) {
	if devBypass {
		if sub := strings.TrimSpace(headerLookup(req.Headers, devSubHeader)); sub != "" {
			return models.Claims{
				Subject: sub,
				Email:   strings.TrimSpace(headerLookup(req.Headers, devEmailHeader)),
			}, nil
		}
	}

	a := req.RequestContext.Authorizer
	if a == nil || a.JWT == nil || a.JWT.Claims == nil {
		return models.Claims{}, ErrUnauthorized
	}
	return models.Claims{
		Subject: a.JWT.Claims["sub"],
		Email:   a.JWT.Claims["email"],
	}, nil
}

// RequireSubject fails with ErrUnauthorized unless c has a subject.
func RequireSubject(c models.Claims) (string, error) {
	if err := validate.Subject(c.Subject); err != nil {
		return "", ErrUnauthorized
	}
	return c.Subject, nil
}
