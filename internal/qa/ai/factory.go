// Package ai selects answer-synthesis strategies for one query's AIConfig.
package ai

import (
	"net/http"

	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
	"github.com/akolanti/DocQA/internal/qa/llm"
	"github.com/akolanti/DocQA/internal/qa/llm/gemini"
	"github.com/akolanti/DocQA/internal/qa/llm/local"
	"github.com/akolanti/DocQA/internal/qa/llm/openai"
)

// Source carries the shared HTTP client into per-query chain building.
type Source struct {
	HTTPClient *http.Client
}

func NewSource(httpClient *http.Client) *Source {
	return &Source{HTTPClient: httpClient}
}

func (s *Source) ChainFor(cfg qaModel.AIConfig) []llm.Provider {
	return NewChain(cfg, s.HTTPClient)
}

// NewChain builds the ordered strategy list for one query. Remote chains
// try the requested (or default) model first and then the provider's
// smaller fallback model. The local chain is a single strategy that cannot
// fail. Unknown providers were rejected at the API boundary, so anything
// unrecognized here falls back to local.
func NewChain(cfg qaModel.AIConfig, httpClient *http.Client) []llm.Provider {
	switch cfg.Provider {
	case qaModel.ProviderOpenAI:
		primary := cfg.Model
		if primary == "" {
			primary = config.OpenAIModelName
		}
		chain := []llm.Provider{openai.NewClient(cfg.APIKey, primary, httpClient)}
		if primary != config.OpenAIFallbackModelName {
			chain = append(chain, openai.NewClient(cfg.APIKey, config.OpenAIFallbackModelName, httpClient))
		}
		return chain
	case qaModel.ProviderGemini:
		primary := cfg.Model
		if primary == "" {
			primary = config.GeminiModelName
		}
		chain := []llm.Provider{gemini.NewClient(cfg.APIKey, primary, httpClient)}
		if primary != config.GeminiFallbackModelName {
			chain = append(chain, gemini.NewClient(cfg.APIKey, config.GeminiFallbackModelName, httpClient))
		}
		return chain
	default:
		return []llm.Provider{local.NewClient()}
	}
}
