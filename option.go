package gemcall

// Option configures a Request (functional options pattern).
type Option func(*Request)

// WithHistory sets the prior conversation turns, oldest first.
func WithHistory(turns []Turn) Option {
	return func(r *Request) {
		r.History = turns
	}
}

// WithTurn appends a single turn to the history.
func WithTurn(role Role, text string) Option {
	return func(r *Request) {
		r.History = append(r.History, Turn{Role: role, Text: text})
	}
}

// WithSchema sets the JSON Schema attached as a generation constraint.
func WithSchema(schema map[string]any) Option {
	return func(r *Request) {
		r.Schema = schema
	}
}

// WithModel overrides DefaultModel.
func WithModel(model string) Option {
	return func(r *Request) {
		r.Model = model
	}
}

// WithTemperature sets the sampling temperature (default 0.0).
func WithTemperature(t float64) Option {
	return func(r *Request) {
		r.Temperature = t
	}
}

// WithAPIKey sets an explicit credential for this request, taking precedence
// over the Client credential and the GEMINI_API_KEY environment variable.
func WithAPIKey(key string) Option {
	return func(r *Request) {
		r.APIKey = key
	}
}

// WithMaxOutputTokens caps the reply length.
func WithMaxOutputTokens(n int32) Option {
	return func(r *Request) {
		r.MaxOutputTokens = n
	}
}

// WithTopP sets nucleus sampling.
func WithTopP(p float64) Option {
	return func(r *Request) {
		r.TopP = &p
	}
}

// WithStopSequences sets sequences that end generation.
func WithStopSequences(stop []string) Option {
	return func(r *Request) {
		r.StopSequences = stop
	}
}
