package internal

import "errors"

var (
	ErrMissingSchema           = errors.New("i18nsync: missing schema")
	ErrNothingToGenerate       = errors.New("i18nsync: no file targets configured")
	ErrInvalidTarget           = errors.New("i18nsync: invalid file target")
	ErrDuplicateTarget         = errors.New("i18nsync: file configured twice")
	ErrInvalidDefaultNamespace = errors.New("i18nsync: invalid default namespace")
	ErrFileFunc                = errors.New("i18nsync: file func failed")
	ErrReadFile                = errors.New("i18nsync: failed to read file")
	ErrReconcile               = errors.New("i18nsync: failed to reconcile file")
	ErrIndex                   = errors.New("i18nsync: failed to build index")
	ErrCommit                  = errors.New("i18nsync: failed to write file")
)
