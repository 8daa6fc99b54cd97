package translation

import "errors"

var (
	ErrPathCollision = errors.New("translation: colliding paths")
	ErrInvalidPath   = errors.New("translation: invalid path")
	ErrMalformed     = errors.New("translation: malformed resource content")
	ErrUnknownFormat = errors.New("translation: unknown resource format")
)
