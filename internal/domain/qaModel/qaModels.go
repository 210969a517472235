package qaModel

import (
	"context"
	"fmt"
	"time"
)

type Provider string

const (
	ProviderLocal  Provider = "local"
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// AIConfig is supplied by the caller on every question and threaded through
// the pipeline as a parameter. It is never read from ambient state and never
// persisted; the json tags exist for the request body only.
type AIConfig struct {
	Provider Provider `json:"provider"`
	APIKey   string   `json:"apiKey,omitempty"`
	Model    string   `json:"model,omitempty"`
}

// Normalize defaults an empty provider tag to local and rejects unknown
// tags. Unknown tags are a caller contract violation, not a recoverable
// synthesis failure.
func (c AIConfig) Normalize() (AIConfig, error) {
	if c.Provider == "" {
		c.Provider = ProviderLocal
	}
	switch c.Provider {
	case ProviderLocal, ProviderOpenAI, ProviderGemini:
		return c, nil
	default:
		return c, fmt.Errorf("unknown ai provider %q", c.Provider)
	}
}

// Passage is a scored view into one page of one ready document. Derived
// fresh on every query, never stored.
type Passage struct {
	DocumentName string
	Page         int
	Text         string
	Score        float64
}

type Citation struct {
	DocumentName string `json:"document"`
	Page         int    `json:"page"`
	Excerpt      string `json:"excerpt"`
}

// QuestionAnswer is the immutable record of one answered question.
type QuestionAnswer struct {
	Question string     `json:"question"`
	Answer   string     `json:"answer"`
	Sources  []Citation `json:"sources"`
	AskedAt  time.Time  `json:"asked_at"`
}

type HistoryStore interface {
	AppendRecord(ctx context.Context, record QuestionAnswer) error
	RecentRecords(ctx context.Context, limit int64) ([]QuestionAnswer, error)
}
