package utils

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrMissingCredentials  = errors.New("missing credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrMemberNotFound      = errors.New("member not found")
	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrLogNotFound         = errors.New("workout log not found")
	ErrMeasurementNotFound = errors.New("measurement not found")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrExerciseNameTaken   = errors.New("exercise name already taken")
	ErrExerciseInUse       = errors.New("exercise is referenced by workout logs")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrInvalidInterval     = errors.New("invalid interval parameter")
	ErrInvalidLimit        = errors.New("invalid limit parameter")
	ErrDatabaseError       = errors.New("database error")
)
