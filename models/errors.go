package models

import "errors"

// Domain errors surfaced to callers. Controllers map these onto HTTP statuses;
// repository/storage failures pass through untouched.
var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrChannelDisabled   = errors.New("preferred contact channel is disabled")
	ErrAlreadySent       = errors.New("reminder already sent")
)
