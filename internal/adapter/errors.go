package adapter

import "errors"

// Sentinel errors returned by [SyncAPIClient] implementations.
var (
	// ErrUnauthorized is returned on HTTP 401 and when no access token is
	// available; the request is not sent in the latter case.
	ErrUnauthorized = errors.New("not authenticated")
	// ErrForbidden is returned on HTTP 403.
	ErrForbidden = errors.New("forbidden")
	// ErrBadRequest is returned on HTTP 400 and other 4xx statuses.
	ErrBadRequest = errors.New("bad request")
	// ErrConflict is returned on HTTP 409.
	ErrConflict = errors.New("conflict")
	// ErrServer is returned on any 5xx status.
	ErrServer = errors.New("sync service error")
	// ErrOffline is returned when the service cannot be reached at all
	// (DNS failure, refused connection, network unreachable).
	ErrOffline = errors.New("sync service unreachable")
	// ErrTimeout is returned when the request deadline expires.
	ErrTimeout = errors.New("sync request timed out")
	// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed sync response")
	// ErrInvalidEndpoint is returned by constructors given an unusable URL.
	ErrInvalidEndpoint = errors.New("invalid sync endpoint")
)
