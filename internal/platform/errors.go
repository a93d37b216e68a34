package platform

import "errors"

// Error kinds shared by every reader. Callers branch with errors.Is.
var (
	// ErrUnsupported is returned by readers on operating systems without an implementation
	ErrUnsupported = errors.New("not supported on this platform")

	// ErrSourceUnavailable means a file, query or OS call could not be opened or reported failure
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrMalformedRecord means a source was readable but a record in it was not understood
	ErrMalformedRecord = errors.New("malformed record")
)
