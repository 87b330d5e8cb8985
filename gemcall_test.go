package gemcall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest_Defaults(t *testing.T) {
	t.Parallel()
	req := NewRequest("system", "user")
	assert.Equal(t, "system", req.SystemPrompt)
	assert.Equal(t, "user", req.UserMessage)
	assert.Equal(t, DefaultModel, req.Model)
	assert.Zero(t, req.Temperature)
	assert.Empty(t, req.History)
	assert.Nil(t, req.Schema)
	assert.Empty(t, req.APIKey)
}

func TestNewRequest_Options(t *testing.T) {
	t.Parallel()
	schema := map[string]any{"type": "object"}
	req := NewRequest("system", "user",
		WithModel("gemini-2.5-pro"),
		WithTemperature(0.7),
		WithSchema(schema),
		WithAPIKey("key-123"),
		WithHistory([]Turn{{Role: RoleUser, Text: "A"}}),
		WithTurn(RoleModel, "B"),
		WithMaxOutputTokens(256),
		WithTopP(0.9),
		WithStopSequences([]string{"END"}),
	)
	assert.Equal(t, "gemini-2.5-pro", req.Model)
	assert.InDelta(t, 0.7, req.Temperature, 1e-9)
	assert.Equal(t, schema, req.Schema)
	assert.Equal(t, "key-123", req.APIKey)
	require.Len(t, req.History, 2)
	assert.Equal(t, Turn{Role: RoleUser, Text: "A"}, req.History[0])
	assert.Equal(t, Turn{Role: RoleModel, Text: "B"}, req.History[1])
	assert.Equal(t, int32(256), req.MaxOutputTokens)
	require.NotNil(t, req.TopP)
	assert.InDelta(t, 0.9, *req.TopP, 1e-9)
	assert.Equal(t, []string{"END"}, req.StopSequences)
}

func TestWithTurn_PreservesOrder(t *testing.T) {
	t.Parallel()
	req := NewRequest("s", "u",
		WithTurn(RoleUser, "first"),
		WithTurn(RoleModel, "second"),
		WithTurn(RoleUser, "third"),
	)
	require.Len(t, req.History, 3)
	assert.Equal(t, "first", req.History[0].Text)
	assert.Equal(t, "second", req.History[1].Text)
	assert.Equal(t, "third", req.History[2].Text)
}
