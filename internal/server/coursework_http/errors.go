package coursework_http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"coursework_service/internal/errdefs"
	"coursework_service/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func mapErr(err error) int {
	switch {
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdefs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errdefs.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errdefs.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, errdefs.ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError hides internal detail: business errors carry their message,
// anything else becomes a generic failure after being logged.
func respondError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error) {
	code := mapErr(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.Error(err),
		)
		msg = "internal error"
	}
	respondJSON(w, code, errorResponse{Error: msg})
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
