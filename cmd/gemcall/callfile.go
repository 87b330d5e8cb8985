package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skosovsky/gemcall"
)

// callFile is the YAML description of one structured generation call.
type callFile struct {
	SystemPrompt string         `yaml:"systemPrompt"`
	UserMessage  string         `yaml:"userMessage"`
	Model        string         `yaml:"model"`
	Temperature  float64        `yaml:"temperature"`
	History      []callTurn     `yaml:"history"`
	Schema       map[string]any `yaml:"schema"`
}

type callTurn struct {
	Role string `yaml:"role"`
	Text string `yaml:"text"`
}

// loadCallFile reads and decodes a call file.
func loadCallFile(path string) (*callFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read call file: %w", err)
	}
	var cf callFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse call file %s: %w", path, err)
	}
	return &cf, nil
}

// toRequest builds a gemcall.Request from the call file plus CLI overrides.
func (cf *callFile) toRequest(modelOverride string, apiKey string) *gemcall.Request {
	opts := []gemcall.Option{
		gemcall.WithTemperature(cf.Temperature),
	}
	if cf.Model != "" {
		opts = append(opts, gemcall.WithModel(cf.Model))
	}
	if modelOverride != "" {
		opts = append(opts, gemcall.WithModel(modelOverride))
	}
	if cf.Schema != nil {
		opts = append(opts, gemcall.WithSchema(cf.Schema))
	}
	if apiKey != "" {
		opts = append(opts, gemcall.WithAPIKey(apiKey))
	}
	for _, turn := range cf.History {
		opts = append(opts, gemcall.WithTurn(gemcall.Role(turn.Role), turn.Text))
	}
	return gemcall.NewRequest(cf.SystemPrompt, cf.UserMessage, opts...)
}
