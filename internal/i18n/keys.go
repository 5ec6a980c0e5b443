// Package i18n provides internationalization support for the packing planner.
package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyTimeout            = "error.timeout"

	// ErrKeySessionNotFound indicates an unknown or expired packing session.
	ErrKeySessionNotFound = "error.session_not_found"
	// ErrKeyBoxTypeNotFound indicates an unknown box type id.
	ErrKeyBoxTypeNotFound = "error.box_type_not_found"
	// ErrKeyUnknownSKU indicates units were set for a SKU outside the shipment.
	ErrKeyUnknownSKU = "error.unknown_sku"
	// ErrKeyUnknownField indicates an unsupported box type field.
	ErrKeyUnknownField = "error.unknown_field"
	// ErrKeySessionSaving indicates the session is locked by an in-flight save.
	ErrKeySessionSaving = "error.session_saving"
	// ErrKeySessionFinished indicates the session was already saved or closed.
	ErrKeySessionFinished = "error.session_finished"
	// ErrKeyValidationFailed is the aggregate advisory for critical field errors.
	ErrKeyValidationFailed = "error.validation_failed"
	// ErrKeySaveFailed prefixes a failed save with the upstream message.
	ErrKeySaveFailed = "error.save_failed"
	// ErrKeyUpstreamUnavailable indicates the shipments API circuit is open.
	ErrKeyUpstreamUnavailable = "error.upstream_unavailable"
	// ErrKeyIdempotencyMismatch indicates an idempotency key reused with a different request.
	ErrKeyIdempotencyMismatch = "error.idempotency_mismatch"
)

// Success message translation keys.
const (
	SuccessKeySessionOpened = "success.session_opened"
	SuccessKeyPackingSaved  = "success.packing_saved"
)
