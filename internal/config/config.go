// Package config loads CLI settings from the environment and .env files.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	errs "github.com/matzehuels/reclass/pkg/errors"
	"github.com/matzehuels/reclass/pkg/storage"
)

// Environment variables read by [Load].
const (
	EnvPlatform    = "RECLASS_PLATFORM"
	EnvS3Endpoint  = "RECLASS_S3_ENDPOINT"
	EnvS3Region    = "RECLASS_S3_REGION"
	EnvS3AccessKey = "RECLASS_S3_ACCESS_KEY"
	EnvS3SecretKey = "RECLASS_S3_SECRET_KEY"
	EnvS3Bucket    = "RECLASS_S3_BUCKET"
	EnvS3UseSSL    = "RECLASS_S3_USE_SSL"
)

const defaultBucket = "reclass-projects"

type Config struct {
	// Platform overrides the platform tag written to saved projects.
	// Empty means the platform of the running binary.
	Platform string
	Storage  StorageConfig
}

type StorageConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// S3Config converts c to the settings used by [storage.NewS3Store].
func (c StorageConfig) S3Config() storage.S3Config {
	return storage.S3Config{
		Endpoint:  c.Endpoint,
		Region:    c.Region,
		AccessKey: c.AccessKey,
		SecretKey: c.SecretKey,
		Bucket:    c.Bucket,
		UseSSL:    c.UseSSL,
	}
}

// Load reads ./.env if present and then the process environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return fromLookup(os.Getenv)
}

// LoadFile reads settings from the env file at path without modifying the
// process environment. Variables set in the environment still win.
func LoadFile(path string) (*Config, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "read %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "read %s", path)
	}
	return fromLookup(func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return vars[key]
	})
}

func fromLookup(getenv func(string) string) (*Config, error) {
	get := func(key string) string { return strings.TrimSpace(getenv(key)) }

	platform := get(EnvPlatform)
	switch platform {
	case "", "x64", "x86":
	default:
		return nil, errs.New(errs.ErrCodeInvalidInput, "%s must be x64 or x86, got %q", EnvPlatform, platform)
	}

	endpoint := get(EnvS3Endpoint)
	return &Config{
		Platform: platform,
		Storage: StorageConfig{
			Enabled:   endpoint != "",
			Endpoint:  endpoint,
			Region:    firstNonEmpty(get(EnvS3Region), storage.DefaultRegion),
			AccessKey: get(EnvS3AccessKey),
			SecretKey: get(EnvS3SecretKey),
			Bucket:    firstNonEmpty(get(EnvS3Bucket), defaultBucket),
			UseSSL:    parseBool(get(EnvS3UseSSL), true),
		},
	}, nil
}

func parseBool(raw string, fallback bool) bool {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
