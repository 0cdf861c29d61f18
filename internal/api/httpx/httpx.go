package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/mini-linkedin/internal/apperr"
)

type APIError struct {
	Message string      `json:"message"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, msg string, details interface{}) {
	WriteJSON(w, status, APIError{
		Message: msg,
		Code:    code,
		Details: details,
	})
}

// Messages overrides the client-facing message per error kind.
type Messages map[error]string

var kinds = []error{
	apperr.ErrInvalidInput,
	apperr.ErrConflict,
	apperr.ErrUnauthorized,
	apperr.ErrForbidden,
	apperr.ErrNotFound,
}

var defaultMessages = Messages{
	apperr.ErrInvalidInput: "Invalid input",
	apperr.ErrConflict:     "Already exists",
	apperr.ErrUnauthorized: "Unauthorized",
	apperr.ErrForbidden:    "Forbidden",
	apperr.ErrNotFound:     "Not found",
}

// WriteServiceError maps err onto the error taxonomy. The wrapped error text
// only goes to the log; clients get a fixed message for the kind.
func WriteServiceError(w http.ResponseWriter, r *http.Request, err error, msgs Messages) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		WriteError(w, status, apperr.Code(err), "Server error", nil)
		return
	}
	slog.DebugContext(r.Context(), "request rejected", "path", r.URL.Path, "status", status, "err", err)

	msg := "Request failed"
	for _, kind := range kinds {
		if !errors.Is(err, kind) {
			continue
		}
		if m, ok := msgs[kind]; ok {
			msg = m
		} else {
			msg = defaultMessages[kind]
		}
		break
	}
	var details interface{}
	var fields interface{ Fields() interface{} }
	if errors.As(err, &fields) {
		details = fields.Fields()
	}
	WriteError(w, status, apperr.Code(err), msg, details)
}

// MaxJSONBytes caps request bodies read by DecodeJSON.
const MaxJSONBytes = 1 << 20

// DecodeJSON reads a JSON body into v. An empty body leaves v untouched.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxJSONBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("json body over %d bytes: %w", MaxJSONBytes, apperr.ErrInvalidInput)
		}
		return fmt.Errorf("malformed json body: %w", apperr.ErrInvalidInput)
	}
	return nil
}
