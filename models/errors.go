package models

import "errors"

var (
	// ErrAlreadyVoted signals a duplicate (user, target) vote; callers treat
	// it as already-voted, never as success.
	ErrAlreadyVoted = errors.New("already voted on this target")

	// ErrUnknownTargetType signals an unrecognized polymorphic target tag.
	ErrUnknownTargetType = errors.New("unknown target type")

	// ErrUnknownActivityType is a defect in feed formatting and must not be
	// masked.
	ErrUnknownActivityType = errors.New("unknown activity type")

	ErrUnauthorized = errors.New("unauthorized")
)
