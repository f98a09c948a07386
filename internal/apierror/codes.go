package apierror

// Error type URIs following the urn:decisionlog:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:decisionlog:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:decisionlog:error:not_found"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:decisionlog:error:rate_limit"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:decisionlog:error:unauthorized"

	// TypeForbidden indicates insufficient permissions (403)
	TypeForbidden = "urn:decisionlog:error:forbidden"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:decisionlog:error:internal"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:decisionlog:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation   = "Validation Error"
	TitleNotFound     = "Resource Not Found"
	TitleRateLimit    = "Rate Limit Exceeded"
	TitleUnauthorized = "Authentication Required"
	TitleForbidden    = "Permission Denied"
	TitleInternal     = "Internal Server Error"
	TitleBadRequest   = "Bad Request"
)
