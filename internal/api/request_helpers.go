package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/readme-api/internal/api/shared"
)

// defaultMaxBodyBytes bounds request bodies when no input limit is configured.
const defaultMaxBodyBytes = 1 << 20

// maxBodyBytes returns the body size limit for a given input limit in
// characters. A JSON-escaped character takes at most six bytes.
func maxBodyBytes(maxInputChars int) int64 {
	if maxInputChars <= 0 {
		return defaultMaxBodyBytes
	}
	return int64(maxInputChars)*6 + 4096
}

// decodeAndValidate reads a JSON body into v and validates it.
// It writes an error response and returns false when either step fails.
//
// Parameters:
//   - w: The HTTP response writer
//   - r: The HTTP request
//   - v: Pointer to the request struct
//   - limit: Maximum body size in bytes
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}, limit int64) bool {
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := shared.DecodeJSON(r, v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge,
				"Request body is too large", err, shared.WithElevatedLogLevel())
			return false
		}
		HandleValidationError(w, r, err)
		return false
	}

	if err := shared.ValidateRequest(v); err != nil {
		HandleValidationError(w, r, err)
		return false
	}
	return true
}
