package validate

import (
	"fmt"
	"strings"

	"github.com/baharkarakas/mini-linkedin/internal/apperr"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Unwrap makes field errors match apperr.ErrInvalidInput.
func (e Errs) Unwrap() error { return apperr.ErrInvalidInput }

// Fields exposes the per-field messages as response details.
func (e Errs) Fields() interface{} { return []ErrField(e) }

// Collect drops nil checks and returns the rest as one error, or nil.
func Collect(checks ...*ErrField) error {
	var out Errs
	for _, c := range checks {
		if c != nil {
			out = append(out, *c)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Helpers
func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func Email(field, value string) *ErrField {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	at := strings.LastIndex(v, "@")
	if at <= 0 || at == len(v)-1 {
		return &ErrField{Field: field, Msg: "must be an email address"}
	}
	return nil
}

func MaxLen(field, value string, max int) *ErrField {
	if len(value) > max {
		return &ErrField{Field: field, Msg: fmt.Sprintf("must be at most %d bytes", max)}
	}
	return nil
}
