package local

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/akolanti/DocQA/internal/domain/qaModel"
)

func passage(doc string, page int, text string) qaModel.Passage {
	return qaModel.Passage{DocumentName: doc, Page: page, Text: text}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
	}{
		{"One. Two! Three?", []string{"One.", "Two!", "Three?"}},
		{"Only one sentence.", []string{"Only one sentence."}},
		{"trailing fragment with no punctuation", []string{"trailing fragment with no punctuation"}},
		{"Ends cleanly. then trails off", []string{"Ends cleanly.", "then trails off"}},
		{"", nil},
		{"   ", nil},
	}

	for _, tt := range tests {
		if got := SplitSentences(tt.text); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("SplitSentences(%q) = %v; want %v", tt.text, got, tt.expected)
		}
	}
}

func TestGenerateQuotesMatchingSentence(t *testing.T) {
	// Page text ends mid-line, so the fragment itself is the sentence.
	passages := []qaModel.Passage{passage("report.pdf", 1, "revenue grew 20% in Q3")}

	client := NewClient()
	got, err := client.Generate(context.Background(), "What was the revenue?", "", passages)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !strings.Contains(got, "revenue grew 20% in Q3") {
		t.Errorf("Answer should quote the matching sentence, got %q", got)
	}
	if !strings.Contains(got, "report.pdf") || !strings.Contains(got, "page 1") {
		t.Errorf("Answer should name its source, got %q", got)
	}
	if !strings.Contains(got, Disclaimer) {
		t.Errorf("Answer must end with the extractive disclaimer, got %q", got)
	}
}

func TestGenerateNoKeywordMatch(t *testing.T) {
	passages := []qaModel.Passage{passage("report.pdf", 1, "revenue grew 20% in Q3")}

	client := NewClient()
	got, err := client.Generate(context.Background(), "What about headcount?", "", passages)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != NotFoundAnswer {
		t.Errorf("Expected the not-found answer, got %q", got)
	}
}

func TestGenerateAllStopwordQuestion(t *testing.T) {
	passages := []qaModel.Passage{passage("report.pdf", 1, "revenue grew 20% in Q3")}

	client := NewClient()
	got, err := client.Generate(context.Background(), "What was that?", "", passages)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != NotFoundAnswer {
		t.Errorf("Expected the not-found answer for an all-stopword question, got %q", got)
	}
}

func TestGenerateNoPassages(t *testing.T) {
	client := NewClient()
	got, err := client.Generate(context.Background(), "What was the revenue?", "", nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != NotFoundAnswer {
		t.Errorf("Expected the not-found answer without passages, got %q", got)
	}
}

func TestGenerateCapsQuotedSentences(t *testing.T) {
	text := "Revenue one. Revenue two. Revenue three. Revenue four. Revenue five."
	passages := []qaModel.Passage{passage("report.pdf", 1, text)}

	client := NewClient()
	got, err := client.Generate(context.Background(), "What was the revenue?", "", passages)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if quoted := strings.Count(got, "\n- "); quoted != maxSentences {
		t.Errorf("Expected %d quoted sentences, got %d in %q", maxSentences, quoted, got)
	}
}

func TestGenerateReadsBoundedPassageWindow(t *testing.T) {
	// Only the fourth passage matches, but the extractive pass reads just
	// the top three.
	passages := []qaModel.Passage{
		passage("a.pdf", 1, "nothing to see here"),
		passage("a.pdf", 2, "still nothing in this one"),
		passage("b.pdf", 1, "more filler text"),
		passage("b.pdf", 2, "revenue grew 20% in Q3"),
	}

	client := NewClient()
	got, err := client.Generate(context.Background(), "What was the revenue?", "", passages)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != NotFoundAnswer {
		t.Errorf("Passages beyond the window should not be read, got %q", got)
	}
}

func TestGenerateRanksByKeywordHits(t *testing.T) {
	text := "Revenue was mentioned once. Revenue growth came from strong revenue in new markets."
	passages := []qaModel.Passage{passage("report.pdf", 1, text)}

	client := NewClient()
	got, err := client.Generate(context.Background(), "What was the revenue growth?", "", passages)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	lines := strings.Split(got, "\n")
	var firstQuote string
	for _, line := range lines {
		if strings.HasPrefix(line, "- ") {
			firstQuote = line
			break
		}
	}
	if !strings.Contains(firstQuote, "Revenue growth came from strong revenue") {
		t.Errorf("Best-scoring sentence should be quoted first, got %q", firstQuote)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	passages := []qaModel.Passage{
		passage("a.pdf", 1, "Revenue grew in Q3. Margins were stable."),
		passage("b.pdf", 2, "Revenue guidance was raised."),
	}

	client := NewClient()
	first, err := client.Generate(context.Background(), "What was the revenue?", "", passages)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := client.Generate(context.Background(), "What was the revenue?", "", passages)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if first != second {
		t.Errorf("Identical inputs must produce identical answers:\n%q\nvs\n%q", first, second)
	}
}
