package qa

import (
	"fmt"
	"strings"
)

// Degraded answers returned by the pipeline's short-circuit branches.
// These are answers, not errors: the caller always receives a completed
// QuestionAnswer.
const (
	NoDocumentsAnswer = "Please upload at least one document before asking a question."

	NoRelevantContentAnswer = "I could not find anything relevant to your question in the uploaded documents."
)

// StillProcessingAnswer names the documents that are not ready yet.
func StillProcessingAnswer(names []string) string {
	return fmt.Sprintf("Some documents are still being processed: %s. Please wait for processing to finish and ask again.", strings.Join(names, ", "))
}

// FailedDocumentsAnswer names the documents whose extraction failed.
func FailedDocumentsAnswer(names []string) string {
	return fmt.Sprintf("Some documents could not be processed: %s. Remove them or upload readable copies, then ask again.", strings.Join(names, ", "))
}
