package upstream

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FieldError is one entry of a structured validation failure
type FieldError struct {
	Loc []string `json:"loc"`
	Msg string   `json:"msg"`
}

// ErrorDetail is the upstream's {detail: string | array} payload decoded once
// at the HTTP boundary into a tagged form: either a simple message or a list
// of field errors, never both.
type ErrorDetail struct {
	Message string
	Fields  []FieldError
}

// IsZero reports whether the response carried no usable detail
func (d ErrorDetail) IsZero() bool {
	return d.Message == "" && len(d.Fields) == 0
}

func (d *ErrorDetail) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Message = s
		return nil
	}
	var fields []FieldError
	if err := json.Unmarshal(data, &fields); err == nil {
		d.Fields = fields
		return nil
	}
	// Unknown shape: treated as absent, caller falls back to a generic message
	return nil
}

// String renders the detail for display: the message verbatim, or field
// errors joined as "loc.path: msg" pairs.
func (d ErrorDetail) String() string {
	if d.Message != "" {
		return d.Message
	}
	parts := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		parts = append(parts, strings.Join(f.Loc, ".")+": "+f.Msg)
	}
	return strings.Join(parts, ", ")
}

// APIError is a non-2xx upstream response
type APIError struct {
	Status int
	Detail ErrorDetail
}

func (e *APIError) Error() string {
	if e.Detail.IsZero() {
		return fmt.Sprintf("upstream: status %d", e.Status)
	}
	return fmt.Sprintf("upstream: status %d: %s", e.Status, e.Detail.String())
}

// Message returns the human-readable text per the display rule, or fallback
// when the response carried no decodable detail.
func (e *APIError) Message(fallback string) string {
	if e.Detail.IsZero() {
		return fallback
	}
	return e.Detail.String()
}
