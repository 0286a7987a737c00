package response

import "github.com/gin-gonic/gin"

// Canonical error messages the admin UI matches on.
const (
	MsgUnauthorized = "Unauthorized"
	MsgForbidden    = "Forbidden"
	MsgUnavailable  = "Service unavailable"
)

// ErrorBody is the uniform error payload: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error wraps an error message for JSON serialization.
func Error(msg string) ErrorBody {
	return ErrorBody{Error: msg}
}

// Collection wraps a full refreshed collection keyed by its resource name,
// e.g. {"services": [...]}. Mutation endpoints always return the whole
// ordered collection so the caller can replace its local list atomically.
func Collection(resource string, items interface{}) gin.H {
	return gin.H{resource: items}
}
