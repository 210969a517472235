// Package local answers questions by quoting matched sentences straight
// out of the top passages. It needs no network access and no credential,
// and it always produces an answer string.
package local

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
	"github.com/akolanti/DocQA/internal/qa/llm"
	"github.com/akolanti/DocQA/internal/qa/scorer"
)

const (
	providerName = "local"

	// Disclaimer trails every extractive answer.
	Disclaimer = "(Local keyword search: these are verbatim excerpts from your documents, not a synthesized answer. Configure a remote AI provider for generated answers.)"

	// NotFoundAnswer is returned when no sentence matches any keyword.
	NotFoundAnswer = "I could not find an answer to your question in the uploaded documents."

	maxSentences = 3
)

var sentencePattern = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`)

type extractive struct{}

func NewClient() llm.Provider {
	return &extractive{}
}

func (e *extractive) Name() string {
	return providerName
}

// Generate matches question keywords against the sentences of a bounded
// number of candidate passages and concatenates the best hits, each tagged
// with its document and page. Deterministic for deterministic inputs.
func (e *extractive) Generate(_ context.Context, question string, _ string, passages []qaModel.Passage) (string, error) {
	keywords := scorer.Keywords(question)
	if len(keywords) == 0 || len(passages) == 0 {
		return NotFoundAnswer, nil
	}

	limit := config.FallbackPassageCount
	if limit > len(passages) {
		limit = len(passages)
	}

	type match struct {
		sentence string
		document string
		page     int
		score    int
	}
	var matches []match
	for _, passage := range passages[:limit] {
		for _, sentence := range SplitSentences(passage.Text) {
			score := sentenceScore(sentence, keywords)
			if score == 0 {
				continue
			}
			matches = append(matches, match{
				sentence: sentence,
				document: passage.DocumentName,
				page:     passage.Page,
				score:    score,
			})
		}
	}

	if len(matches) == 0 {
		return NotFoundAnswer, nil
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].score > matches[b].score
	})
	if len(matches) > maxSentences {
		matches = matches[:maxSentences]
	}

	var b strings.Builder
	b.WriteString("Based on keyword matches in your documents:\n")
	for _, m := range matches {
		b.WriteString(fmt.Sprintf("\n- %q (%s, page %d)", m.sentence, m.document, m.page))
	}
	b.WriteString("\n\n" + Disclaimer)
	return b.String(), nil
}

// SplitSentences splits on terminal punctuation. A trailing fragment with
// no terminal punctuation still counts as a sentence, since extracted page
// text often ends mid-line.
func SplitSentences(text string) []string {
	var sentences []string
	end := 0
	for _, loc := range sentencePattern.FindAllStringIndex(text, -1) {
		if s := strings.TrimSpace(text[loc[0]:loc[1]]); s != "" {
			sentences = append(sentences, s)
		}
		end = loc[1]
	}
	if rest := strings.TrimSpace(text[end:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

func sentenceScore(sentence string, keywords []string) int {
	score := 0
	for _, tok := range scorer.Tokenize(sentence) {
		for _, kw := range keywords {
			if tok == kw {
				score++
				break
			}
		}
	}
	return score
}
