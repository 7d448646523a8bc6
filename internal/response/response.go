package response

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
)

// Report is the standardized machine-readable output envelope.
type Report struct {
	Data        interface{}  `json:"data"`
	Error       *ErrorBody   `json:"error,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	Metadata    Metadata     `json:"metadata"`
}

// ErrorBody represents the structural error that stopped a load.
type ErrorBody struct {
	Code    ErrCode           `json:"code"`
	Message string            `json:"message"`
	Detail  string            `json:"detail,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Diagnostic is a single data-quality finding raised while loading.
type Diagnostic struct {
	Code    ErrCode `json:"code"`
	Source  string  `json:"source"`
	Line    int     `json:"line,omitempty"`
	Subject string  `json:"subject,omitempty"`
	Message string  `json:"message"`
}

// Metadata includes run tracing and timing.
type Metadata struct {
	RunID     string `json:"run_id"`
	Timestamp string `json:"timestamp"`
}

// ────────────────────────────────────────────────────────────────────────────
// Helper builders
// ────────────────────────────────────────────────────────────────────────────

// NewDiagnostic builds a diagnostic with the default message for code.
func NewDiagnostic(code ErrCode, source string, line int, subject string) Diagnostic {
	return Diagnostic{
		Code:    code,
		Source:  source,
		Line:    line,
		Subject: subject,
		Message: GetMessage(code),
	}
}

// Success builds a report envelope carrying data and the load diagnostics.
func Success(data interface{}, diagnostics []Diagnostic) Report {
	if diagnostics == nil {
		diagnostics = []Diagnostic{}
	}
	return Report{
		Data:        data,
		Diagnostics: diagnostics,
		Metadata:    buildMetadata(),
	}
}

// Fail builds a report envelope for a load that stopped on a structural error.
// Data loaded before the failure is still included.
func Fail(data interface{}, diagnostics []Diagnostic, code ErrCode, err error) Report {
	r := Success(data, diagnostics)
	r.Error = &ErrorBody{Code: code, Message: GetMessage(code)}
	if err != nil {
		r.Error.Detail = err.Error()
	}
	return r
}

// FailWithFields builds a report envelope for a configuration failure.
func FailWithFields(code ErrCode, fields map[string]string) Report {
	r := Success(nil, nil)
	r.Error = &ErrorBody{Code: code, Message: GetMessage(code), Fields: fields}
	return r
}

// Write encodes r as indented JSON.
func (r Report) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// ────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ────────────────────────────────────────────────────────────────────────────

func buildMetadata() Metadata {
	return Metadata{
		RunID:     uuid.New().String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
