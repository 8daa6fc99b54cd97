package reconcile

import "errors"

var (
	ErrHandler       = errors.New("reconcile: conflict handler failed")
	ErrUnknownPolicy = errors.New("reconcile: unknown unmatched-key policy")
)
