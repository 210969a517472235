package ai

import (
	"reflect"
	"testing"

	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
)

func chainNames(cfg qaModel.AIConfig) []string {
	chain := NewChain(cfg, nil)
	names := make([]string, 0, len(chain))
	for _, p := range chain {
		names = append(names, p.Name())
	}
	return names
}

func TestNewChainShapes(t *testing.T) {
	tests := []struct {
		name     string
		cfg      qaModel.AIConfig
		expected []string
	}{
		{
			"local",
			qaModel.AIConfig{Provider: qaModel.ProviderLocal},
			[]string{"local"},
		},
		{
			"empty provider falls back to local",
			qaModel.AIConfig{},
			[]string{"local"},
		},
		{
			"openai default model plus fallback",
			qaModel.AIConfig{Provider: qaModel.ProviderOpenAI, APIKey: "sk-x"},
			[]string{"openai/" + config.OpenAIModelName, "openai/" + config.OpenAIFallbackModelName},
		},
		{
			"openai explicit model plus fallback",
			qaModel.AIConfig{Provider: qaModel.ProviderOpenAI, APIKey: "sk-x", Model: "gpt-4.1"},
			[]string{"openai/gpt-4.1", "openai/" + config.OpenAIFallbackModelName},
		},
		{
			"openai fallback model requested directly",
			qaModel.AIConfig{Provider: qaModel.ProviderOpenAI, APIKey: "sk-x", Model: config.OpenAIFallbackModelName},
			[]string{"openai/" + config.OpenAIFallbackModelName},
		},
		{
			"gemini default model plus fallback",
			qaModel.AIConfig{Provider: qaModel.ProviderGemini, APIKey: "g-x"},
			[]string{"gemini/" + config.GeminiModelName, "gemini/" + config.GeminiFallbackModelName},
		},
		{
			"gemini fallback model requested directly",
			qaModel.AIConfig{Provider: qaModel.ProviderGemini, APIKey: "g-x", Model: config.GeminiFallbackModelName},
			[]string{"gemini/" + config.GeminiFallbackModelName},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chainNames(tt.cfg); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("chain = %v; want %v", got, tt.expected)
			}
		})
	}
}

func TestSourceBuildsChains(t *testing.T) {
	source := NewSource(nil)

	chain := source.ChainFor(qaModel.AIConfig{Provider: qaModel.ProviderLocal})
	if len(chain) != 1 || chain[0].Name() != "local" {
		t.Errorf("Expected a single local strategy, got %d entries", len(chain))
	}
}
