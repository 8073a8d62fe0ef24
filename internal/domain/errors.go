package domain

import "net/http"

// AppError is a structured, client-safe application error. Every failure
// kind named in the error taxonomy maps to exactly one AppError value, so
// the HTTP boundary never has to guess a status code from a message string.
type AppError struct {
	Code    string `json:"-"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func newErr(status int, code string) *AppError {
	return &AppError{Code: code, Message: code, Status: status}
}

// Predefined errors, one per failure kind in the taxonomy.
var (
	ErrMalformedRequest    = newErr(http.StatusBadRequest, "MALFORMED_REQUEST")
	ErrCommentsRequired    = newErr(http.StatusBadRequest, "COMMENTS_REQUIRED")
	ErrInvalidCoordinate   = newErr(http.StatusBadRequest, "INVALID_COORDINATE")
	ErrWrongTrip           = newErr(http.StatusBadRequest, "WRONG_TRIP")
	ErrInvalidToken        = newErr(http.StatusBadRequest, "INVALID_TOKEN")
	ErrDomainNotAllowed    = newErr(http.StatusForbidden, "DOMAIN_NOT_ALLOWED")
	ErrMissingCredentials  = newErr(http.StatusUnauthorized, "MISSING_CREDENTIALS")
	ErrExpiredToken        = newErr(http.StatusUnauthorized, "EXPIRED_TOKEN")
	ErrBadCredentials      = newErr(http.StatusUnauthorized, "BAD_CREDENTIALS")
	ErrBlocked             = newErr(http.StatusForbidden, "BLOCKED")
	ErrAccountSuspended    = newErr(http.StatusForbidden, "ACCOUNT_SUSPENDED")
	ErrForbidden           = newErr(http.StatusForbidden, "FORBIDDEN")
	ErrNotFound            = newErr(http.StatusNotFound, "NOT_FOUND")
	ErrConcurrentRequest   = newErr(http.StatusConflict, "CONCURRENT_REQUEST")
	ErrConcurrentScan      = newErr(http.StatusConflict, "CONCURRENT_SCAN")
	ErrDuplicateForTrip    = newErr(http.StatusConflict, "DUPLICATE_FOR_TRIP")
	ErrDuplicateForDir     = newErr(http.StatusConflict, "DUPLICATE_FOR_DIRECTION")
	ErrTripAlreadyActive   = newErr(http.StatusConflict, "TRIP_ALREADY_ACTIVE")
	ErrTripUnavailable     = newErr(http.StatusGone, "TRIP_UNAVAILABLE")
	ErrInternal            = newErr(http.StatusInternalServerError, "INTERNAL")
	ErrTelemetryUnavailable = newErr(http.StatusServiceUnavailable, "TELEMETRY_UNAVAILABLE")
	ErrStoreUnavailable    = newErr(http.StatusServiceUnavailable, "STORE_UNAVAILABLE")

	// ErrAlreadyCancelled/ErrAlreadyBoarded are genuine cancel() failures: a
	// second cancel on a terminal booking does nothing useful, unlike
	// boarding validation's ALREADY_BOARDED sub-result (BoardingStatusAlreadyBoarded),
	// which is an idempotent success and never constructed as an AppError.
	ErrAlreadyCancelled = newErr(http.StatusConflict, "ALREADY_CANCELLED")
	ErrAlreadyBoarded   = newErr(http.StatusConflict, "ALREADY_BOARDED")

	// ErrNotEligible covers validateBoarding's third outcome: the booking
	// exists and matches the trip but is neither CONFIRMED nor BOARDED (most
	// commonly CANCELLED) — spec.md §4.5 step 4 names this NOT_ELIGIBLE but
	// omits it from the §7 status table; 409 fits the sibling CONCURRENT_*
	// and DUPLICATE_* conflict codes better than any other bucket.
	ErrNotEligible = newErr(http.StatusConflict, "NOT_ELIGIBLE")
)

// AsAppError unwraps err into an *AppError, falling back to ErrInternal so
// callers never leak unstructured error text to the client.
func AsAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*AppError); ok {
		return ae
	}
	return ErrInternal
}
