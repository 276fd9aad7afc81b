package domain

import "errors"

var (
	// ErrInvalidReferral is returned when a referral code is not in the registry
	ErrInvalidReferral = errors.New("invalid referral code")

	// ErrNotFound is returned when a required record is missing
	ErrNotFound = errors.New("record not found")
)
