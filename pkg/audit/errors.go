package audit

import "errors"

var (
	ErrExport           = errors.New("audit: failed to export state")
	ErrImport           = errors.New("audit: failed to load state")
	ErrRunNotFound      = errors.New("audit: run not found")
	ErrEmptyRunID       = errors.New("audit: run id cannot be empty")
	ErrEmptyRedisURL    = errors.New("audit: empty redis URL")
	ErrInvalidRedisURL  = errors.New("audit: invalid redis URL")
	ErrRedisUnavailable = errors.New("audit: failed to connect to redis")
)
