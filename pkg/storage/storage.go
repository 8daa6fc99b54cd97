package storage

import (
	"context"
	"path"
	"strings"
)

// Storage reads and writes translation resources by slash-separated name.
type Storage interface {
	// Read returns the content stored under name.
	// It returns an error wrapping ErrNotFound when nothing is stored there.
	Read(ctx context.Context, name string) ([]byte, error)

	// Write replaces the content stored under name, creating parents as needed.
	Write(ctx context.Context, name string, data []byte) error
}

// Config holds S3-compatible storage configuration.
type Config struct {
	// Bucket is the S3 bucket name (required).
	Bucket string `yaml:"bucket"`

	// AccessKey is the AWS access key ID (required).
	AccessKey string `yaml:"access_key"`

	// SecretKey is the AWS secret access key (required).
	SecretKey string `yaml:"secret_key"`

	// Endpoint is the custom S3 endpoint URL (optional, for MinIO or other S3-compatible services).
	Endpoint string `yaml:"endpoint"`

	// Region is the AWS region (default: us-east-1).
	Region string `yaml:"region"`

	// Prefix is prepended to every resource name to build the object key.
	Prefix string `yaml:"prefix"`

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `yaml:"path_style"`
}

// DefaultRegion is used when Config.Region is empty.
const DefaultRegion = "us-east-1"

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
}

func (c *Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}

// cleanName normalizes a resource name and rejects names escaping the root.
func cleanName(name string) (string, error) {
	clean := path.Clean(strings.ReplaceAll(name, "\\", "/"))
	clean = strings.TrimPrefix(clean, "/")
	if clean == "" || clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", ErrInvalidName
	}
	return clean, nil
}
