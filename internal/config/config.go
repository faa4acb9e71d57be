package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	envPort                  = "PORT"
	envServerReadTimeout     = "SERVER_READ_TIMEOUT"
	envServerWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	envServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"
	envMongoURI              = "MONGODB_URI"
	envMongoDatabase         = "MONGODB_DATABASE"
	envAWSRegion             = "AWS_REGION"
	envAWSAccessKeyID        = "AWS_ACCESS_KEY_ID"
	envAWSSecretAccessKey    = "AWS_SECRET_ACCESS_KEY"
	envS3Bucket              = "AWS_S3_BUCKET"
	envUploadURLExpiry       = "UPLOAD_URL_EXPIRY"
	envMaxUploadSize         = "MAX_UPLOAD_SIZE"
	envDefaultUploadFolder   = "UPLOAD_FOLDER"
)

const (
	defaultServerPort         = "8080"
	defaultServerReadTimeout  = 10 * time.Second
	defaultServerWriteTimeout = 10 * time.Second
	defaultServerShutdown     = 10 * time.Second
	defaultMongoDatabase      = "keycatalog"
	defaultUploadURLExpiry    = time.Hour
	defaultMaxUploadSize      = int64(5 * 1024 * 1024)
	defaultUploadFolder       = "logos"

	errInvalidConfigurationFmt = "invalid configuration: %w"
)

var (
	errMongoURIRequired     = errors.New("MONGODB_URI must be set")
	errRegionRequired       = errors.New("AWS_REGION must be set")
	errAWSAccessKeyRequired = errors.New("AWS_ACCESS_KEY_ID must be set")
	errAWSSecretKeyRequired = errors.New("AWS_SECRET_ACCESS_KEY must be set")
	errBucketRequired       = errors.New("AWS_S3_BUCKET must be set")
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	AWS    AWSConfig
	Upload UploadConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type MongoConfig struct {
	URI      string
	Database string
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

type UploadConfig struct {
	URLExpiry     time.Duration
	MaxUploadSize int64
	DefaultFolder string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv(envPort, defaultServerPort),
			ReadTimeout:     getDurationEnv(envServerReadTimeout, defaultServerReadTimeout),
			WriteTimeout:    getDurationEnv(envServerWriteTimeout, defaultServerWriteTimeout),
			ShutdownTimeout: getDurationEnv(envServerShutdownTimeout, defaultServerShutdown),
		},
		Mongo: MongoConfig{
			URI:      os.Getenv(envMongoURI),
			Database: getEnv(envMongoDatabase, defaultMongoDatabase),
		},
		AWS: AWSConfig{
			Region:          os.Getenv(envAWSRegion),
			AccessKeyID:     os.Getenv(envAWSAccessKeyID),
			SecretAccessKey: os.Getenv(envAWSSecretAccessKey),
			Bucket:          os.Getenv(envS3Bucket),
		},
		Upload: UploadConfig{
			URLExpiry:     getDurationEnv(envUploadURLExpiry, defaultUploadURLExpiry),
			MaxUploadSize: getInt64Env(envMaxUploadSize, defaultMaxUploadSize),
			DefaultFolder: getEnv(envDefaultUploadFolder, defaultUploadFolder),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(errInvalidConfigurationFmt, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return errMongoURIRequired
	}

	if c.AWS.Region == "" {
		return errRegionRequired
	}

	if c.AWS.AccessKeyID == "" {
		return errAWSAccessKeyRequired
	}

	if c.AWS.SecretAccessKey == "" {
		return errAWSSecretKeyRequired
	}

	if c.AWS.Bucket == "" {
		return errBucketRequired
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}
