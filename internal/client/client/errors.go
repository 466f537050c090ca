package client

import "errors"

var (
	ErrUnavailable           = errors.New("gateway unavailable")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)

// RemoteError is the defined error shape at the gateway boundary. The mobile
// apps used to catch anything and read .message off it; here every remote
// failure that is not a connectivity or auth problem is a *RemoteError.
type RemoteError struct {
	// Code is the gRPC status code name, e.g. "InvalidArgument".
	Code string
	// Message is the human-readable text stored on the queued record.
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}
