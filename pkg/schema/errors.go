package schema

import "errors"

var (
	ErrUnknownKind     = errors.New("schema: unknown unit kind")
	ErrInvalidDocument = errors.New("schema: invalid schema document")
	ErrDuplicateUnit   = errors.New("schema: duplicate unit id")
)
