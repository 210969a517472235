package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
	"github.com/akolanti/DocQA/internal/qa/llm"
)

const providerName = "gemini"

type llmClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient builds a Gemini strategy for one query. The genai client is
// created inside Generate because its constructor needs the request
// context; it does not dial until the call.
func NewClient(apiKey string, model string, httpClient *http.Client) llm.Provider {
	return &llmClient{apiKey: apiKey, model: model, httpClient: httpClient}
}

func (c *llmClient) Name() string {
	return providerName + "/" + c.model
}

func (c *llmClient) Generate(ctx context.Context, question string, contextText string, _ []qaModel.Passage) (string, error) {
	if c.apiKey == "" {
		return "", &llm.AuthError{Provider: providerName, Err: errors.New("missing api key")}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: c.apiKey, HTTPClient: c.httpClient})
	if err != nil {
		return "", err
	}

	userPrompt := fmt.Sprintf("Context:\n%s\n\nUser Question: %s", contextText, question)

	contentConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{
				{Text: config.SynthesisSystemPrompt},
			},
		},
		Temperature:     genai.Ptr(config.ModelTemperature),
		MaxOutputTokens: config.MaxOutputTokens,
	}

	result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(userPrompt), contentConfig)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
				return "", &llm.AuthError{Provider: providerName, Err: err}
			}
			return "", &llm.RequestError{Provider: providerName, StatusCode: apiErr.Code, Message: apiErr.Message}
		}
		return "", err
	}

	answer := strings.TrimSpace(result.Text())
	if answer == "" {
		return "", &llm.MalformedResponseError{Provider: providerName, Reason: "response carried no candidate text"}
	}
	return answer, nil
}
