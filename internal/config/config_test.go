package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"AWS_REGION", "S3_BUCKET", "DDB_TABLE", "APP_ENV", "LOG_LEVEL", "DEV_BYPASS_AUTH", "AWS_ENDPOINT_URL"} {
		t.Setenv(k, "")
	}

	e, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Env{
		Region:   "us-east-1",
		Bucket:   "family-cloud-root",
		Table:    "family-cloud-videos",
		AppEnv:   "prod",
		LogLevel: "info",
	}, e)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AWS_REGION", "eu-west-2")
	t.Setenv("S3_BUCKET", "media")
	t.Setenv("DDB_TABLE", "videos")
	t.Setenv("APP_ENV", "local")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEV_BYPASS_AUTH", "true")
	t.Setenv("AWS_ENDPOINT_URL", "http://localhost:4566")

	e, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "eu-west-2", e.Region)
	assert.Equal(t, "media", e.Bucket)
	assert.Equal(t, "videos", e.Table)
	assert.Equal(t, "local", e.AppEnv)
	assert.Equal(t, "debug", e.LogLevel)
	assert.True(t, e.DevBypassAuth)
	assert.Equal(t, "http://localhost:4566", e.Endpoint)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	_, err := Load()
	assert.Error(t, err)
	assert.Panics(t, func() { MustLoad() })
}

func TestLoad_BadEndpoint(t *testing.T) {
	t.Setenv("AWS_ENDPOINT_URL", "not a url")
	_, err := Load()
	assert.Error(t, err)
}
