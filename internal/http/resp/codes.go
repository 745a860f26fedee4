package resp

// Codes carried in the "code" field of JSON responses.
const (
	CodeOK               = "ok"
	CodeQueued           = "queued"
	CodeBadRequest       = "bad_request"
	CodeNotFound         = "not_found"
	CodeReactionDisabled = "reaction_disabled"
	CodeRateLimited      = "rate_limited"
	CodeInternalError    = "internal_error"
	CodeUnavailable      = "unavailable"
)
