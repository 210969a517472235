// Package contextbuilder turns ranked passages into the bounded prompt
// context handed to answer synthesis, plus the citations surfaced to the
// caller.
package contextbuilder

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
)

// Assemble takes passages already sorted by descending relevance and
// returns the joined context text and at most config.MaxCitations
// citations.
func Assemble(passages []qaModel.Passage) (string, []qaModel.Citation) {
	return BuildContext(passages, config.MaxContextPassages), BuildCitations(passages)
}

// BuildContext keeps the top maxPassages passages, truncates each page to
// the per-passage rune budget, prefixes a [Document N: "<name>", Page <p>]
// header and joins the chunks with blank lines in relevance order.
func BuildContext(passages []qaModel.Passage, maxPassages int) string {
	if maxPassages > len(passages) {
		maxPassages = len(passages)
	}

	chunks := make([]string, 0, maxPassages)
	for i, passage := range passages[:maxPassages] {
		header := fmt.Sprintf("[Document %d: %q, Page %d]", i+1, passage.DocumentName, passage.Page)
		chunks = append(chunks, header+"\n"+truncateRunes(passage.Text, config.PassageCharBudget))
	}
	return strings.Join(chunks, "\n\n")
}

// BuildCitations returns citations for the top passages, never more than
// config.MaxCitations regardless of how many passages fed the context.
func BuildCitations(passages []qaModel.Passage) []qaModel.Citation {
	limit := config.MaxCitations
	if limit > len(passages) {
		limit = len(passages)
	}

	citations := make([]qaModel.Citation, 0, limit)
	for _, passage := range passages[:limit] {
		citations = append(citations, qaModel.Citation{
			DocumentName: passage.DocumentName,
			Page:         passage.Page,
			Excerpt:      truncateRunes(passage.Text, config.CitationExcerptChars) + "...",
		})
	}
	return citations
}

func truncateRunes(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	return string([]rune(text)[:limit])
}
