package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"runtime/debug"
	"time"

	"food-admin/internal/model"

	"github.com/rs/zerolog"
)

// maxLoggedBody bounds how much of a request body is copied into the request log.
const maxLoggedBody = 4 << 10

// Logging logs one line per HTTP request with timing information.
// The level follows the response status: info below 400, warn for 4xx, error for 5xx.
func Logging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			body := captureBody(r)

			// Create a response writer wrapper to capture status code
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			var event *zerolog.Event
			switch {
			case rw.statusCode >= http.StatusInternalServerError:
				event = logger.Error()
			case rw.statusCode >= http.StatusBadRequest:
				event = logger.Warn()
			default:
				event = logger.Info()
			}

			event = event.
				Str("ip", ClientIP(r)).
				Str("method", r.Method).
				Str("route", r.URL.RequestURI()).
				Int("status", rw.statusCode).
				Dur("duration", time.Since(start))

			if email := emailID(r, body); email != "" {
				event = event.Str("email_id", email)
			}
			withBody(event, body).Msg("http request")
		})
	}
}

// Recovery recovers from panics and returns the 500 error envelope.
// The panic is logged with the request body and the stack.
func Recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body := captureBody(r)

			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}

					event := logger.Error().
						Interface("panic", err).
						Str("ip", ClientIP(r)).
						Str("method", r.Method).
						Str("route", r.URL.RequestURI())
					withBody(event, body).
						Bytes("stack", debug.Stack()).
						Msg("panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(model.ErrorResponse{
						Error:   true,
						Message: "Internal Server Error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// captureBody copies up to maxLoggedBody bytes of the request body for logging
// and leaves r.Body readable from the start.
func captureBody(r *http.Request) []byte {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	buf, err := io.ReadAll(io.LimitReader(r.Body, maxLoggedBody))
	r.Body = readCloser{
		Reader: io.MultiReader(bytes.NewReader(buf), r.Body),
		Closer: r.Body,
	}
	if err != nil {
		return nil
	}
	return buf
}

type readCloser struct {
	io.Reader
	io.Closer
}

// emailID returns the email a request acts on, taken from the JSON body or the
// X-User-Email header.
func emailID(r *http.Request, body []byte) string {
	var payload struct {
		Email string `json:"email"`
	}
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil && payload.Email != "" {
		return payload.Email
	}
	return r.Header.Get("X-User-Email")
}

// withBody adds the captured request body to event, inline when it is JSON.
func withBody(event *zerolog.Event, body []byte) *zerolog.Event {
	if len(body) == 0 {
		return event
	}
	if json.Valid(body) {
		return event.RawJSON("body", body)
	}
	return event.Bytes("body", body)
}

// ClientIP returns the address a request came from, preferring X-Forwarded-For.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	return r.RemoteAddr
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code.
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
