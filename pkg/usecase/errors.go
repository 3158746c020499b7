package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the use case layer. The HTTP controller maps these to
// response codes; everything else surfaces as a 500.
var (
	// Not found errors
	ErrTaskNotFound         = goerr.New("task not found")
	ErrRequestNotFound      = goerr.New("request not found")
	ErrDispositionNotFound  = goerr.New("disposition not found")
	ErrMeetingNotFound      = goerr.New("meeting not found")
	ErrNotificationNotFound = goerr.New("notification not found")

	// Validation errors
	ErrValidation            = goerr.New("validation failed")
	ErrFillerIndexOutOfRange = goerr.New("filler index out of range")

	// State errors
	ErrRequestNotPending  = goerr.New("request is not pending")
	ErrRequestCompleted   = goerr.New("request is already completed")
	ErrProgressNotTracked = goerr.New("request status does not track progress")
	ErrTaskTerminal       = goerr.New("task is in a terminal status")
)
