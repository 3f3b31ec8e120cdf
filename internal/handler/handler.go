package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"food-admin/internal/middleware"
	"food-admin/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxBodyBytes bounds request bodies accepted by the API.
const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing left to report to the client
		return
	}
}

// writeError writes the error envelope with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.ErrorResponse{Error: true, Message: message})
}

// respondError maps err to a status code and writes the error envelope.
// Domain errors carry their own client message; anything else is a 500.
func respondError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := statusFor(domainErr.Code)
		logger.Debug().Str("code", domainErr.Code).Int("status", status).Msg(domainErr.Message)
		writeError(w, status, domainErr.Message)
		return
	}

	logger.Error().
		Err(err).
		Str("ip", middleware.ClientIP(r)).
		Str("method", r.Method).
		Str("route", r.URL.RequestURI()).
		Msg("unhandled error")

	message := err.Error()
	if message == "" {
		message = http.StatusText(http.StatusInternalServerError)
	}
	writeError(w, http.StatusInternalServerError, message)
}

func statusFor(code string) int {
	switch code {
	case model.ErrCodeInvalidJSON, model.ErrCodeInvalidOrder, model.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case model.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes the request body into v. Patches are decoded strictly so
// that a misspelled field is rejected instead of silently ignored.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, strict bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return model.NewDomainError(model.ErrCodeInvalidJSON, "Request body is empty")
		}
		return model.NewDomainError(model.ErrCodeInvalidJSON, "Invalid JSON body: "+err.Error())
	}
	return nil
}

// pathID parses the {id} path segment. ok is false for anything that is not a UUID.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, model.OKResponse{OK: true})
}
