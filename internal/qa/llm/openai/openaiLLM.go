package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
	"github.com/akolanti/DocQA/internal/qa/llm"
)

const providerName = "openai"

type llmClient struct {
	client openai.Client
	apiKey string
	model  string
}

// NewClient builds a chat-completions strategy for one query. The key and
// model come from the caller's AIConfig, never from process state.
func NewClient(apiKey string, model string, httpClient *http.Client) llm.Provider {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	return &llmClient{
		client: openai.NewClient(opts...),
		apiKey: apiKey,
		model:  model,
	}
}

func (c *llmClient) Name() string {
	return providerName + "/" + c.model
}

func (c *llmClient) Generate(ctx context.Context, question string, contextText string, _ []qaModel.Passage) (string, error) {
	if c.apiKey == "" {
		return "", &llm.AuthError{Provider: providerName, Err: errors.New("missing api key")}
	}

	userPrompt := fmt.Sprintf("Context:\n%s\n\nUser Question: %s", contextText, question)

	chat, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(config.SynthesisSystemPrompt),
			openai.UserMessage(userPrompt),
		},
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(float64(config.ModelTemperature)),
		MaxTokens:   openai.Int(config.MaxOutputTokens),
	})
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			if apierr.StatusCode == http.StatusUnauthorized {
				return "", &llm.AuthError{Provider: providerName, Err: err}
			}
			return "", &llm.RequestError{Provider: providerName, StatusCode: apierr.StatusCode, Message: apierr.Message}
		}
		return "", err
	}

	if len(chat.Choices) == 0 {
		return "", &llm.MalformedResponseError{Provider: providerName, Reason: "response carried no choices"}
	}
	answer := strings.TrimSpace(chat.Choices[0].Message.Content)
	if answer == "" {
		return "", &llm.MalformedResponseError{Provider: providerName, Reason: "choice carried empty content"}
	}
	return answer, nil
}
