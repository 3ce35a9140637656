package notifyclient

import "errors"

var (
	ErrEmptyApiToken      = errors.New("api token is empty")
	ErrInvalidBaseUrl     = errors.New("invalid base url")
	ErrEmptyMessageData   = errors.New("message data is empty")
	ErrEmptyGroupName     = errors.New("token group name is empty")
	ErrEmptyReferenceId   = errors.New("notification reference id is empty")
	ErrUnknownRecipients  = errors.New("unknown recipients type")
	ErrInvalidPathSegment = errors.New("invalid path segment")
)
