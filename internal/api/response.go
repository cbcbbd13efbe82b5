package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nhalm/canonlog"
)

// CommentsResponse lists the comments of one news item, newest first.
// @Description Comments of a news item
type CommentsResponse struct {
	NewsID   int               `json:"newsId"`
	Count    int               `json:"count"`
	Comments []CommentResponse `json:"comments"`
}

// ErrorResponse is the body of every non-2xx response.
// @Description Standard error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the specifics of an API error.
// @Description Error details
type ErrorDetail struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Param   string `json:"param,omitempty"`
}

// Error codes. Clients branch on these, not on messages.
const (
	CodeInvalidParameter = "invalid_parameter"
	CodeInvalidBody      = "invalid_body"
	CodeUpstreamTimeout  = "upstream_timeout"
	CodeUpstreamFailure  = "upstream_failure"
	CodeInternal         = "internal"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError records err on the canonical log line and writes the error
// envelope. Messages of 500s never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, status int, err error, code, message, param string) {
	canonlog.AddRequestError(r.Context(), err)

	errType := "invalid_request_error"
	if status >= http.StatusInternalServerError {
		errType = "api_error"
	}
	if status == http.StatusInternalServerError || mentionsStorage(message) {
		message = "An internal error occurred"
	}

	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{
		Type:    errType,
		Code:    code,
		Message: message,
		Param:   param,
	}})
}

func mentionsStorage(message string) bool {
	lower := strings.ToLower(message)
	for _, word := range []string{"sql", "database", "postgres"} {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func invalidParam(w http.ResponseWriter, r *http.Request, err error, param string) {
	writeError(w, r, http.StatusBadRequest, err, CodeInvalidParameter, err.Error(), param)
}

func invalidBody(w http.ResponseWriter, r *http.Request, err error, message string) {
	writeError(w, r, http.StatusBadRequest, err, CodeInvalidBody, message, "")
}
