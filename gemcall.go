package gemcall

// Role is the speaker of a prior conversation turn (user or model).
type Role string

// Conversation turn roles. Gemini knows exactly these two; the system
// instruction is not a turn and has no role here.
const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// DefaultModel is used when a Request does not name a model.
const DefaultModel = "gemini-2.5-flash-lite"

// EnvAPIKey is the environment variable consulted when neither the Request
// nor the Client carries an explicit API key.
const EnvAPIKey = "GEMINI_API_KEY"

// Turn is one message of prior conversation history. Ordering is
// conversationally significant and preserved exactly as given.
type Turn struct {
	Role Role
	Text string
}

// Request describes one structured generation call. SystemPrompt and
// UserMessage are required; everything else has a documented default.
// A Request is built per call, used once, and discarded.
type Request struct {
	// SystemPrompt is attached as the system instruction, not as a turn.
	SystemPrompt string
	// UserMessage becomes the final turn of the conversation.
	UserMessage string
	// History holds prior turns, oldest first. Default empty.
	History []Turn
	// Schema is a JSON-Schema-shaped map attached as a generation
	// constraint. When nil, JSON output is still requested but
	// unconstrained. The parsed result is never validated against it.
	Schema map[string]any
	// Model defaults to DefaultModel when empty.
	Model string
	// Temperature defaults to 0.0 (deterministic) and is always sent.
	Temperature float64
	// APIKey overrides the Client credential and the EnvAPIKey variable.
	APIKey string

	// MaxOutputTokens caps the reply length when positive.
	MaxOutputTokens int32
	// TopP is sent only when non-nil.
	TopP *float64
	// StopSequences are sent only when non-empty.
	StopSequences []string
}

// NewRequest returns a Request for the given prompts with defaults applied,
// configured via functional options.
func NewRequest(systemPrompt, userMessage string, opts ...Option) *Request {
	r := &Request{
		SystemPrompt: systemPrompt,
		UserMessage:  userMessage,
		Model:        DefaultModel,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
