// Package storage abstracts where translation resources live.
//
// The engine only needs two operations: read a resource by name and replace
// it. Names are slash separated and relative to the storage root; names
// that would escape the root are rejected with ErrInvalidName. A missing
// resource is reported with an error wrapping ErrNotFound so callers can
// treat it as empty content.
//
// Three implementations are provided:
//
//   - Dir stores files below a local directory and replaces them atomically.
//   - Memory keeps everything in a map; handy in tests and for dry runs.
//   - S3Storage stores objects in an S3-compatible bucket (AWS, MinIO).
//
// # S3
//
//	store, err := storage.NewS3(storage.Config{
//		Bucket:    "locales",
//		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
//		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
//		Prefix:    "web/public/locales",
//	})
//
// S3 API errors are mapped to ErrNotFound and ErrAccessDenied; everything
// else wraps ErrReadFailed or ErrWriteFailed.
package storage
