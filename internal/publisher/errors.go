package publisher

import "errors"

var (
	// ErrUnavailable indicates the publisher endpoint is unreachable.
	ErrUnavailable = errors.New("publisher unavailable")

	// ErrTimeout indicates the publish request exceeded the configured timeout.
	ErrTimeout = errors.New("publish request timed out")

	// ErrRejected indicates the publisher refused the request
	// (bad credentials, unsupported platform, content policy).
	ErrRejected = errors.New("publish request rejected")

	// ErrDisabled indicates no publisher endpoint is configured.
	ErrDisabled = errors.New("publisher not configured")
)
