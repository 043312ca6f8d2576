// Package apierr maps domain errors to HTTP responses.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/legday/internal/db"
	"github.com/2beens/legday/internal/validation"
	"github.com/2beens/legday/pkg"

	log "github.com/sirupsen/logrus"
)

// ErrNotFound is wrapped by every domain not found sentinel.
var ErrNotFound = errors.New("not found")

type ErrorsResponse struct {
	Errors []*validation.FieldError `json:"errors"`
}

// WriteHTTP writes err with the matching status code:
// validation 400, not found 404, retryable storage 503, anything else 500.
func WriteHTTP(w http.ResponseWriter, err error) {
	if fieldErrs := validation.FieldErrors(err); len(fieldErrs) > 0 {
		respJson, mErr := json.Marshal(ErrorsResponse{Errors: fieldErrs})
		if mErr != nil {
			log.Errorf("marshal validation errors: %s", mErr)
			http.Error(w, "error, invalid request", http.StatusBadRequest)
			return
		}
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusBadRequest)
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "error, "+notFoundMessage(err), http.StatusNotFound)
	case db.IsRetryable(err):
		w.Header().Set("Retry-After", "1")
		http.Error(w, "error, storage unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "error, internal error", http.StatusInternalServerError)
	}
}

// notFoundMessage returns the innermost error that still carries
// ErrNotFound, e.g. "day not found".
func notFoundMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil || !errors.Is(next, ErrNotFound) || next == ErrNotFound {
			return err.Error()
		}
		err = next
	}
}
