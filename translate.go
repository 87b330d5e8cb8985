package gemcall

import (
	"fmt"

	"google.golang.org/genai"
)

// translate converts a Request into Gemini contents and generation config.
// History turns map in order, the new user message becomes the final content,
// and the system prompt rides on the config as a system instruction rather
// than a turn. JSON output is requested whether or not a schema is attached.
func translate(req *Request) ([]*genai.Content, *genai.GenerateContentConfig, error) {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for i, turn := range req.History {
		role, err := genaiRole(turn.Role)
		if err != nil {
			return nil, nil, fmt.Errorf("history turn %d: %w", i, err)
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(req.UserMessage, genai.RoleUser))

	temperature := float32(req.Temperature)
	config := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		SystemInstruction: genai.NewContentFromText(req.SystemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}
	if req.Schema != nil {
		schema, err := toGenaiSchema(req.Schema)
		if err != nil {
			return nil, nil, err
		}
		config.ResponseSchema = schema
	}
	if req.MaxOutputTokens > 0 {
		config.MaxOutputTokens = req.MaxOutputTokens
	}
	if req.TopP != nil {
		p := float32(*req.TopP)
		config.TopP = &p
	}
	if len(req.StopSequences) > 0 {
		config.StopSequences = req.StopSequences
	}
	return contents, config, nil
}

func genaiRole(r Role) (genai.Role, error) {
	switch r {
	case RoleUser:
		return genai.RoleUser, nil
	case RoleModel:
		return genai.RoleModel, nil
	default:
		return "", fmt.Errorf("%w: unsupported history role %q", ErrConfiguration, r)
	}
}
