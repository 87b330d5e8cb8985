package gemcall

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three failure kinds, in order of detection.
// All use prefix "gemcall:" for identification. Callers should use
// errors.Is/errors.As.
var (
	// ErrConfiguration covers caller mistakes detected before dispatch
	// (empty prompts, unresolvable credential, bad history role, bad
	// schema) and provider-reported authentication or permission failures.
	ErrConfiguration = errors.New("gemcall: invalid configuration")
	// ErrProvider covers every other failure raised by the Gemini client:
	// network errors, rate limits, malformed-request rejections, server
	// errors. Never retried here.
	ErrProvider = errors.New("gemcall: provider call failed")
	// ErrResponseFormat means the provider replied successfully but the
	// body was not parseable JSON despite the JSON-mode request.
	ErrResponseFormat = errors.New("gemcall: response is not valid JSON")
)

// ProviderError wraps ErrProvider with the provider's own diagnostics.
// Code and Status are zero for transport-level failures that never reached
// the API. Use errors.Is(err, ErrProvider) and errors.As to inspect.
type ProviderError struct {
	Code   int    // HTTP status code, when the API replied
	Status string // provider status string, e.g. "RESOURCE_EXHAUSTED"
	Err    error  // original error from the Gemini client
}

// Error implements error.
func (e *ProviderError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("gemcall: provider call failed (%d %s): %v", e.Code, e.Status, e.Err)
	}
	return fmt.Sprintf("gemcall: provider call failed: %v", e.Err)
}

// Unwrap returns both the ErrProvider sentinel and the original error.
func (e *ProviderError) Unwrap() []error { return []error{ErrProvider, e.Err} }

// FormatError wraps ErrResponseFormat with the raw model text so callers can
// log and debug the contract violation.
type FormatError struct {
	RawText string // verbatim response text that failed to parse
	Err     error  // underlying JSON parse error
}

// Error implements error. The raw text is included verbatim.
func (e *FormatError) Error() string {
	return fmt.Sprintf("gemcall: response is not valid JSON: %v: %q", e.Err, e.RawText)
}

// Unwrap returns both the ErrResponseFormat sentinel and the parse error.
func (e *FormatError) Unwrap() []error { return []error{ErrResponseFormat, e.Err} }

// Compile-time checks that the wrappers implement error.
var (
	_ error = (*ProviderError)(nil)
	_ error = (*FormatError)(nil)
)
