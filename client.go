package gemcall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// Generator is the minimal seam over the Gemini SDK needed to dispatch one
// generation call. It intentionally mirrors (*genai.Models).GenerateContent
// so the real client satisfies it directly; fakes and instrumented wrappers
// slot in via WithGenerator.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// NewGenerator dials the Gemini API and returns the SDK-backed Generator for
// the given key.
func NewGenerator(ctx context.Context, apiKey string) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	return client.Models, nil
}

// Client invokes structured generation calls. The zero-configured Client is
// usable: the credential comes from the request or GEMINI_API_KEY, the model
// from the request or DefaultModel. A Client is safe for concurrent use; each
// Invoke is independent and holds no state across calls.
type Client struct {
	apiKey string
	model  string
	logger zerolog.Logger
	gen    Generator
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithDefaultAPIKey sets the credential used when a Request carries none.
func WithDefaultAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithDefaultModel sets the model used when a Request carries none.
func WithDefaultModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithLogger sets the logger. The default is zerolog.Nop. Only prompt
// skeletons (lengths, counts) are ever logged, never bodies.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithGenerator injects the generation backend, bypassing the SDK-backed one.
// Credential resolution still runs before dispatch.
func WithGenerator(g Generator) ClientOption {
	return func(c *Client) {
		c.gen = g
	}
}

// NewClient returns a Client with the given options applied.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		model:  DefaultModel,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Invoke performs one blocking generation call and returns the parsed JSON
// value (object, array, or primitive). Exactly one provider call is made; no
// retries, no streaming. Failures are ErrConfiguration, ErrProvider, or
// ErrResponseFormat. The parsed value is not validated against req.Schema;
// the schema is a generation hint enforced by the provider alone.
func (c *Client) Invoke(ctx context.Context, req *Request) (any, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request must not be nil", ErrConfiguration)
	}
	if req.SystemPrompt == "" {
		return nil, fmt.Errorf("%w: system prompt must not be empty", ErrConfiguration)
	}
	if req.UserMessage == "" {
		return nil, fmt.Errorf("%w: user message must not be empty", ErrConfiguration)
	}
	key := req.APIKey
	if key == "" {
		key = c.apiKey
	}
	if key == "" {
		key = os.Getenv(EnvAPIKey)
	}
	if key == "" {
		return nil, fmt.Errorf("%w: API key not provided and %s is not set", ErrConfiguration, EnvAPIKey)
	}
	model := req.Model
	if model == "" {
		model = c.model
	}

	contents, config, err := translate(req)
	if err != nil {
		return nil, err
	}

	gen := c.gen
	if gen == nil {
		// One SDK client per call; nothing is shared between invocations.
		gen, err = NewGenerator(ctx, key)
		if err != nil {
			return nil, err
		}
	}

	c.logger.Debug().
		Str("model", model).
		Int("system_len", len(req.SystemPrompt)).
		Int("user_len", len(req.UserMessage)).
		Int("history_turns", len(req.History)).
		Bool("schema", req.Schema != nil).
		Msg("gemini generate")

	resp, err := gen.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, classifyProviderError(err)
	}

	raw := resp.Text()
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, &FormatError{RawText: raw, Err: err}
	}
	return value, nil
}

// Invoke performs a one-off call with a zero-configured Client.
func Invoke(ctx context.Context, req *Request) (any, error) {
	return NewClient().Invoke(ctx, req)
}

// classifyProviderError maps SDK failures to the typed error kinds.
// Authentication and permission rejections are configuration problems; the
// Gemini API reports an invalid key both as 401/403 and as a 400
// INVALID_ARGUMENT whose message names the API key.
func classifyProviderError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden ||
			strings.Contains(apiErr.Message, "API key") {
			return fmt.Errorf("%w: provider rejected credentials (%d %s): %s",
				ErrConfiguration, apiErr.Code, apiErr.Status, apiErr.Message)
		}
		return &ProviderError{Code: apiErr.Code, Status: apiErr.Status, Err: err}
	}
	return &ProviderError{Err: err}
}
