// Package scorer ranks document pages against a question using plain
// whole-word keyword matching. There is no stemming or fuzzy matching:
// "growth" in a question never matches "grew" on a page. That keeps the
// local pipeline fully deterministic.
package scorer

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/domain/docModel"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
)

var stopWords = defaultStopWords()

// Keywords reduces a question to its distinct search terms: lowercased,
// punctuation stripped, short tokens and function words dropped. An empty
// result is a valid outcome, not an error.
func Keywords(question string) []string {
	var keywords []string
	seen := make(map[string]struct{})
	for _, tok := range Tokenize(question) {
		if utf8.RuneCountInString(tok) < config.MinKeywordLength {
			continue
		}
		if _, ok := stopWords[tok]; ok {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		keywords = append(keywords, tok)
	}
	return keywords
}

// Score ranks every page of every ready document against the question.
// A page qualifies when at least one keyword matches as a whole word.
// score = occurrences * distinct matched keywords / sqrt(page runes), so
// pages hitting several distinct terms beat long pages with incidental
// repeats. The sort is stable: ties keep (document, page) encounter order.
func Score(question string, documents []docModel.Document) []qaModel.Passage {
	keywords := Keywords(question)
	if len(keywords) == 0 {
		return nil
	}

	var passages []qaModel.Passage
	for _, doc := range documents {
		if doc.Status != docModel.StatusReady {
			continue
		}
		for i, page := range doc.Pages {
			counts := wordCounts(page)
			total := 0
			distinct := 0
			for _, kw := range keywords {
				if n := counts[kw]; n > 0 {
					total += n
					distinct++
				}
			}
			if distinct == 0 {
				continue
			}
			length := utf8.RuneCountInString(page)
			passages = append(passages, qaModel.Passage{
				DocumentName: doc.Name,
				Page:         i + 1,
				Text:         page,
				Score:        float64(total) * float64(distinct) / math.Sqrt(float64(length)),
			})
		}
	}

	sort.SliceStable(passages, func(a, b int) bool {
		return passages[a].Score > passages[b].Score
	})
	return passages
}

// Tokenize lowercases the text and splits it into letter/digit runs.
func Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)
	return strings.Fields(cleaned)
}

func wordCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range Tokenize(text) {
		counts[tok]++
	}
	return counts
}

func defaultStopWords() map[string]struct{} {
	words := []string{
		"the", "and", "are", "was", "were", "been", "being",
		"have", "has", "had", "does", "did", "doing",
		"will", "would", "shall", "should", "may", "might", "must", "can", "could",
		"what", "when", "where", "which", "who", "whom", "whose", "why", "how",
		"this", "that", "these", "those",
		"with", "from", "not", "but", "its",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
