// Package gemcall calls the Google Gemini API and coerces the response into a
// parsed JSON value. It assembles a system instruction, optional prior
// conversation turns, and a new user message into a Gemini request, attaches
// an optional JSON Schema as a generation constraint, and classifies failures
// into configuration, provider, and response-format errors.
package gemcall
