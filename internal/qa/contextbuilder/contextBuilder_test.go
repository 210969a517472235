package contextbuilder

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
)

func passage(name string, page int, text string) qaModel.Passage {
	return qaModel.Passage{DocumentName: name, Page: page, Text: text}
}

func TestBuildContextHeaderFormat(t *testing.T) {
	passages := []qaModel.Passage{passage("report.pdf", 3, "quarterly numbers")}

	got := BuildContext(passages, 5)

	expected := "[Document 1: \"report.pdf\", Page 3]\nquarterly numbers"
	if got != expected {
		t.Errorf("BuildContext = %q; want %q", got, expected)
	}
}

func TestBuildContextLimitsPassages(t *testing.T) {
	passages := []qaModel.Passage{
		passage("a.pdf", 1, "one"),
		passage("a.pdf", 2, "two"),
		passage("b.pdf", 1, "three"),
		passage("b.pdf", 2, "four"),
		passage("c.pdf", 1, "five"),
		passage("c.pdf", 2, "six"),
	}

	got := BuildContext(passages, config.MaxContextPassages)

	if strings.Contains(got, "six") {
		t.Error("Context contains a passage beyond the limit")
	}
	if chunkCount := strings.Count(got, "[Document "); chunkCount != config.MaxContextPassages {
		t.Errorf("Expected %d chunks, got %d", config.MaxContextPassages, chunkCount)
	}
	if !strings.Contains(got, "\n\n") {
		t.Error("Chunks are not joined with blank lines")
	}
}

func TestBuildContextTruncatesLongPages(t *testing.T) {
	long := strings.Repeat("a", config.PassageCharBudget+500)
	passages := []qaModel.Passage{passage("a.pdf", 1, long)}

	got := BuildContext(passages, 1)

	body := strings.SplitN(got, "\n", 2)[1]
	if utf8.RuneCountInString(body) != config.PassageCharBudget {
		t.Errorf("Expected body of %d runes, got %d", config.PassageCharBudget, utf8.RuneCountInString(body))
	}
}

func TestBuildCitationsCapsAtThree(t *testing.T) {
	passages := []qaModel.Passage{
		passage("a.pdf", 1, "one"),
		passage("a.pdf", 2, "two"),
		passage("b.pdf", 1, "three"),
		passage("b.pdf", 2, "four"),
	}

	citations := BuildCitations(passages)

	if len(citations) != config.MaxCitations {
		t.Fatalf("Expected %d citations, got %d", config.MaxCitations, len(citations))
	}
	if citations[0].DocumentName != "a.pdf" || citations[0].Page != 1 {
		t.Errorf("Citations not in relevance order: %+v", citations[0])
	}
}

func TestBuildCitationsExcerpt(t *testing.T) {
	long := strings.Repeat("b", config.CitationExcerptChars+100)
	passages := []qaModel.Passage{
		passage("a.pdf", 1, "short text"),
		passage("b.pdf", 2, long),
	}

	citations := BuildCitations(passages)

	if citations[0].Excerpt != "short text..." {
		t.Errorf("Short excerpt = %q; want %q", citations[0].Excerpt, "short text...")
	}
	wantLen := config.CitationExcerptChars + len("...")
	if utf8.RuneCountInString(citations[1].Excerpt) != wantLen {
		t.Errorf("Long excerpt length = %d; want %d", utf8.RuneCountInString(citations[1].Excerpt), wantLen)
	}
	if !strings.HasSuffix(citations[1].Excerpt, "...") {
		t.Error("Excerpt does not end in an ellipsis")
	}
}

func TestAssembleEmptyPassages(t *testing.T) {
	contextText, citations := Assemble(nil)

	if contextText != "" {
		t.Errorf("Expected empty context, got %q", contextText)
	}
	if len(citations) != 0 {
		t.Errorf("Expected no citations, got %d", len(citations))
	}
}
