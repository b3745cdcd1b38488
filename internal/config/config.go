// Package config loads configuration from environment variables.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/kylejryan/family-cloud-backend/internal/validate"
)

// Env holds the configuration values for the application.
type Env struct {
	Region        string `validate:"required"`
	Bucket        string `validate:"required"`
	Table         string `validate:"required"`
	Endpoint      string `validate:"omitempty,url"` // LocalStack, e.g. http://localstack:4566
	AppEnv        string `validate:"oneof=local dev prod production"`
	LogLevel      string `validate:"oneof=debug info warn warning error"`
	DevBypassAuth bool
}

// Load reads the environment through viper and validates the result.
func Load() (Env, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("S3_BUCKET", "family-cloud-root")
	v.SetDefault("DDB_TABLE", "family-cloud-videos")
	v.SetDefault("APP_ENV", "prod")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEV_BYPASS_AUTH", false)

	e := Env{
		Region:        v.GetString("AWS_REGION"),
		Bucket:        v.GetString("S3_BUCKET"),
		Table:         v.GetString("DDB_TABLE"),
		Endpoint:      v.GetString("AWS_ENDPOINT_URL"),
		AppEnv:        v.GetString("APP_ENV"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		DevBypassAuth: v.GetBool("DEV_BYPASS_AUTH"),
	}
	if err := validate.Struct(e); err != nil {
		return Env{}, fmt.Errorf("invalid config: %w", err)
	}
	return e, nil
}

// MustLoad is Load that panics on invalid configuration.
func MustLoad() Env {
	e, err := Load()
	if err != nil {
		panic(err)
	}
	return e
}
