package service

import "errors"

// The original single-user UI only ever offered valid actions, so invalid
// requests were silent no-ops. Exposed as an API, callers need to be able
// to tell "nothing happened" from "succeeded", so guard failures surface as
// typed errors instead. State is never touched on a guard failure.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidationFailed  = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid status transition")
)
