package gemcall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestTranslate_HistoryOrderPreserved(t *testing.T) {
	t.Parallel()
	req := NewRequest("be helpful", "C",
		WithHistory([]Turn{
			{Role: RoleUser, Text: "A"},
			{Role: RoleModel, Text: "B"},
		}),
	)
	contents, _, err := translate(req)
	require.NoError(t, err)
	require.Len(t, contents, 3)
	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
	assert.Equal(t, "A", contents[0].Parts[0].Text)
	assert.Equal(t, string(genai.RoleModel), contents[1].Role)
	assert.Equal(t, "B", contents[1].Parts[0].Text)
	assert.Equal(t, string(genai.RoleUser), contents[2].Role)
	assert.Equal(t, "C", contents[2].Parts[0].Text)
}

func TestTranslate_SystemPromptIsInstructionNotTurn(t *testing.T) {
	t.Parallel()
	req := NewRequest("you are a calculator", "2+2?")
	contents, config, err := translate(req)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, "you are a calculator", config.SystemInstruction.Parts[0].Text)
}

func TestTranslate_JSONModeWithoutSchema(t *testing.T) {
	t.Parallel()
	req := NewRequest("s", "u")
	_, config, err := translate(req)
	require.NoError(t, err)
	assert.Equal(t, "application/json", config.ResponseMIMEType)
	assert.Nil(t, config.ResponseSchema)
}

func TestTranslate_SchemaAttached(t *testing.T) {
	t.Parallel()
	req := NewRequest("s", "u", WithSchema(map[string]any{
		"type":       "object",
		"properties": map[string]any{"answer": map[string]any{"type": "integer"}},
	}))
	_, config, err := translate(req)
	require.NoError(t, err)
	assert.Equal(t, "application/json", config.ResponseMIMEType)
	require.NotNil(t, config.ResponseSchema)
	assert.Equal(t, genai.TypeObject, config.ResponseSchema.Type)
	assert.Equal(t, genai.TypeInteger, config.ResponseSchema.Properties["answer"].Type)
}

func TestTranslate_TemperatureAlwaysSent(t *testing.T) {
	t.Parallel()
	_, config, err := translate(NewRequest("s", "u"))
	require.NoError(t, err)
	require.NotNil(t, config.Temperature)
	assert.Zero(t, *config.Temperature)

	_, config, err = translate(NewRequest("s", "u", WithTemperature(0.7)))
	require.NoError(t, err)
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.7, float64(*config.Temperature), 1e-6)
}

func TestTranslate_GenerationKnobs(t *testing.T) {
	t.Parallel()
	req := NewRequest("s", "u",
		WithMaxOutputTokens(128),
		WithTopP(0.95),
		WithStopSequences([]string{"STOP"}),
	)
	_, config, err := translate(req)
	require.NoError(t, err)
	assert.Equal(t, int32(128), config.MaxOutputTokens)
	require.NotNil(t, config.TopP)
	assert.InDelta(t, 0.95, float64(*config.TopP), 1e-6)
	assert.Equal(t, []string{"STOP"}, config.StopSequences)
}

func TestTranslate_KnobsOmittedByDefault(t *testing.T) {
	t.Parallel()
	_, config, err := translate(NewRequest("s", "u"))
	require.NoError(t, err)
	assert.Zero(t, config.MaxOutputTokens)
	assert.Nil(t, config.TopP)
	assert.Empty(t, config.StopSequences)
}

func TestTranslate_UnsupportedRole(t *testing.T) {
	t.Parallel()
	req := NewRequest("s", "u", WithTurn("assistant", "hi"))
	_, _, err := translate(req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "assistant")
	assert.Contains(t, err.Error(), "history turn 0")
}
