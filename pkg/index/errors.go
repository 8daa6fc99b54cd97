package index

import "errors"

var (
	ErrMissingPath        = errors.New("index: missing index file path")
	ErrInvalidImport      = errors.New("index: invalid import")
	ErrInvalidIdentifier  = errors.New("index: namespace does not produce a valid identifier")
	ErrDuplicateNamespace = errors.New("index: duplicate namespace")
	ErrInvalidOptions     = errors.New("index: invalid init options")
	ErrRender             = errors.New("index: failed to render")
)
