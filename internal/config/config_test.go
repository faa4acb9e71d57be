package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv(envMongoURI, "mongodb://localhost:27017")
	t.Setenv(envAWSRegion, "eu-west-2")
	t.Setenv(envAWSAccessKeyID, "AKIATEST")
	t.Setenv(envAWSSecretAccessKey, "secret")
	t.Setenv(envS3Bucket, "key-catalog-assets")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultServerPort, cfg.Server.Port)
	assert.Equal(t, defaultMongoDatabase, cfg.Mongo.Database)
	assert.Equal(t, defaultUploadURLExpiry, cfg.Upload.URLExpiry)
	assert.Equal(t, defaultMaxUploadSize, cfg.Upload.MaxUploadSize)
	assert.Equal(t, defaultUploadFolder, cfg.Upload.DefaultFolder)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(envPort, "9000")
	t.Setenv(envMongoDatabase, "catalog_test")
	t.Setenv(envUploadURLExpiry, "30m")
	t.Setenv(envMaxUploadSize, "1048576")
	t.Setenv(envDefaultUploadFolder, "images")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "catalog_test", cfg.Mongo.Database)
	assert.Equal(t, 30*time.Minute, cfg.Upload.URLExpiry)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxUploadSize)
	assert.Equal(t, "images", cfg.Upload.DefaultFolder)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
		want  error
	}{
		{"mongo uri", envMongoURI, errMongoURIRequired},
		{"aws region", envAWSRegion, errRegionRequired},
		{"access key", envAWSAccessKeyID, errAWSAccessKeyRequired},
		{"secret key", envAWSSecretAccessKey, errAWSSecretKeyRequired},
		{"bucket", envS3Bucket, errBucketRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := Load()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetDurationEnv_BareMinutes(t *testing.T) {
	t.Setenv(envUploadURLExpiry, "45")

	assert.Equal(t, 45*time.Minute, getDurationEnv(envUploadURLExpiry, time.Hour))
}

func TestGetInt64Env_Invalid(t *testing.T) {
	t.Setenv(envMaxUploadSize, "not-a-number")

	assert.Equal(t, int64(42), getInt64Env(envMaxUploadSize, 42))
}
