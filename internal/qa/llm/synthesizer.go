package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
	"github.com/akolanti/DocQA/pkg/logger_i"
)

const (
	invalidCredentialAnswer = "The AI provider rejected the configured API key. Please check your credentials and try again."
	tryAgainLaterAnswer     = "The answer service could not be reached. Please try again later."
)

var (
	loggerOnce sync.Once
	logger     *logger_i.Logger
)

func getLogger() *logger_i.Logger {
	loggerOnce.Do(func() {
		logger = logger_i.NewLogger("synthesizer")
	})
	return logger
}

// Synthesize tries the strategies in order and returns the first answer.
// Each attempt runs under its own bounded timeout. When every strategy
// fails, the last failure is recovered into a user-facing answer string;
// synthesis never surfaces an error to its caller.
func Synthesize(ctx context.Context, question string, contextText string, passages []qaModel.Passage, strategies []Provider) string {
	var lastErr error
	for _, strategy := range strategies {
		attemptCtx, cancel := context.WithTimeout(ctx, config.SynthesisTimeout)
		answer, err := strategy.Generate(attemptCtx, question, contextText, passages)
		cancel()
		if err == nil {
			return strings.TrimSpace(answer)
		}
		lastErr = err
		getLogger().Warn("synthesis strategy failed", "strategy", strategy.Name(), "error", err)
	}
	return RecoverAnswer(lastErr)
}

// RecoverAnswer maps a synthesis failure onto the answer string the caller
// sees. Credential problems get a fixed message, provider-reported errors
// are embedded, and everything else (transport, parse, timeout) collapses
// to a generic retry message.
func RecoverAnswer(err error) string {
	if err == nil {
		return tryAgainLaterAnswer
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		return invalidCredentialAnswer
	}

	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return fmt.Sprintf("The AI provider returned an error: %s", reqErr.Message)
	}

	return tryAgainLaterAnswer
}
