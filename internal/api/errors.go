package api

import (
	"errors"
	"net/http"

	"github.com/clonecoding/storefront/internal/apperrors"
)

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		invalidParam(w, r, err, validationErr.Field)
		return
	}

	var timeoutErr *apperrors.TimeoutError
	if errors.As(err, &timeoutErr) {
		writeError(w, r, http.StatusGatewayTimeout, err, CodeUpstreamTimeout, "upstream timed out", "")
		return
	}

	var upstreamErr *apperrors.UpstreamError
	if errors.As(err, &upstreamErr) {
		writeError(w, r, http.StatusBadGateway, err, CodeUpstreamFailure, "upstream request failed", "")
		return
	}

	writeError(w, r, http.StatusInternalServerError, err, CodeInternal, "", "")
}
