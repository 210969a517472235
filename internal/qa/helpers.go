package qa

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/akolanti/DocQA/internal/domain/docModel"
	"github.com/akolanti/DocQA/internal/domain/jobModel"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
	"github.com/akolanti/DocQA/internal/metrics"
	"github.com/akolanti/DocQA/internal/qa/contextbuilder"
	"github.com/akolanti/DocQA/internal/qa/llm"
	"github.com/akolanti/DocQA/internal/qa/scorer"
	"github.com/akolanti/DocQA/pkg/logger_i"
)

var errDocumentCountMismatch = errors.New("ingest job files and document ids out of step")

func logOutput(job jobModel.Job, status jobModel.InternalStatus, log *logger_i.Logger) jobModel.Job {
	job.CurrentStep = status
	log.Debug("AnswerQuestion", "Current Status", job.CurrentStep)
	return job
}

func (s *service) jobError(job jobModel.Job, err error, message string, canRetry bool) jobModel.Job {
	s.logger.Error(message, "error", err)

	job.Error = jobModel.JobError{
		Code:    http.StatusInternalServerError,
		Message: "Internal Server Error",
		Retry:   canRetry,
	}
	job.Status = jobModel.JobStatusError
	return job
}

// executeValidationStep loads the document snapshot and applies the
// short-circuit policy: no documents at all, documents still being
// processed, or documents that failed extraction. The degraded answer
// names the blocking documents. An empty degraded answer means every
// document is ready and the pipeline may continue.
func (s *service) executeValidationStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job) ([]docModel.Document, string, error) {
	*job = logOutput(*job, jobModel.Validating, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("validation", time.Since(start)) }()

	documents, err := s.documents.ListDocuments(ctx)
	if err != nil {
		return nil, "", err
	}

	if len(documents) == 0 {
		return nil, NoDocumentsAnswer, nil
	}

	var inFlight, failed []string
	for _, doc := range documents {
		switch doc.Status {
		case docModel.StatusPending, docModel.StatusProcessing:
			inFlight = append(inFlight, doc.Name)
		case docModel.StatusFailed:
			failed = append(failed, doc.Name)
		}
	}
	if len(inFlight) > 0 {
		return nil, StillProcessingAnswer(inFlight), nil
	}
	if len(failed) > 0 {
		return nil, FailedDocumentsAnswer(failed), nil
	}

	return documents, "", nil
}

func (s *service) executeScoringStep(log *logger_i.Logger, job *jobModel.Job, documents []docModel.Document) []qaModel.Passage {
	*job = logOutput(*job, jobModel.Scoring, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("scoring", time.Since(start)) }()

	return scorer.Score(job.Question, documents)
}

func (s *service) executeSynthesisStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, passages []qaModel.Passage) (string, []qaModel.Citation) {
	*job = logOutput(*job, jobModel.Synthesizing, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("synthesis", time.Since(start)) }()

	contextText, citations := contextbuilder.Assemble(passages)
	answer := llm.Synthesize(ctx, job.Question, contextText, passages, s.strategies.ChainFor(job.AI))
	return answer, citations
}

// finishAnswer packages the QuestionAnswer, appends it to the history and
// completes the job. A history write failure is logged and swallowed; the
// caller still gets the answer.
func (s *service) finishAnswer(ctx context.Context, log *logger_i.Logger, job jobModel.Job, answer string, citations []qaModel.Citation) jobModel.Job {
	if citations == nil {
		citations = []qaModel.Citation{}
	}
	record := qaModel.QuestionAnswer{
		Question: job.Question,
		Answer:   answer,
		Sources:  citations,
		AskedAt:  time.Now().UTC(),
	}

	if err := s.history.AppendRecord(ctx, record); err != nil {
		log.Error("failed to append question to history", "error", err)
	}
	metrics.IncrementQuestionsAnswered()

	job.Result = &record
	job.CurrentStep = jobModel.Done
	job.Status = jobModel.JobStatusComplete
	return job
}
