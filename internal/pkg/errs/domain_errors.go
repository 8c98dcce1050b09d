package errs

// Cross-layer sentinels. Layer-specific errors live next to the code that returns them.
var (
	// Any failure of the backing store (connection, query, commit).
	// Surfaced to clients as a generic retryable failure.
	ErrStoreUnavailable = New("store unavailable")

	ErrDomainValidation = New("domain validation error")
)
