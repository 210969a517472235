package qa

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/domain/docModel"
	"github.com/akolanti/DocQA/internal/domain/jobModel"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
	"github.com/akolanti/DocQA/internal/metrics"
	"github.com/akolanti/DocQA/internal/qa/extract"
	"github.com/akolanti/DocQA/internal/qa/llm"
	"github.com/akolanti/DocQA/pkg/logger_i"
)

// Service is all the worker sees of the pipeline. It never returns an
// error for a question: every failure branch lands in the job as either a
// degraded answer or a JobError.
type Service interface {
	AnswerQuestion(ctx context.Context, job jobModel.Job) jobModel.Job
	ProcessDocuments(ctx context.Context, job jobModel.Job) jobModel.Job
}

// StrategySource yields the ordered synthesis strategies for one query's
// AI config.
type StrategySource interface {
	ChainFor(cfg qaModel.AIConfig) []llm.Provider
}

type service struct {
	documents  docModel.DocumentStore
	history    qaModel.HistoryStore
	strategies StrategySource
	logger     *logger_i.Logger
}

// NewService wires the pipeline against its stores and strategy factory.
func NewService(documents docModel.DocumentStore, history qaModel.HistoryStore, strategies StrategySource) Service {
	return &service{
		documents:  documents,
		history:    history,
		strategies: strategies,
		logger:     logger_i.NewLogger("qa_service"),
	}
}

// AnswerQuestion drives one question job through Validating, Scoring,
// Synthesizing and Done. Short-circuits (no documents, documents not
// ready, nothing relevant) complete the job with a degraded answer; they
// are valid outcomes, not errors.
func (s *service) AnswerQuestion(ctx context.Context, job jobModel.Job) jobModel.Job {
	inMethodLogger := s.logger.With(config.TRACE_ID_KEY, job.TraceId, "jobId", job.Id)

	documents, degraded, err := s.executeValidationStep(ctx, inMethodLogger, &job)
	if err != nil {
		return s.jobError(job, err, "VALIDATION_FAILURE", true)
	}
	if degraded != "" {
		return s.finishAnswer(ctx, inMethodLogger, job, degraded, nil)
	}

	passages := s.executeScoringStep(inMethodLogger, &job, documents)
	if len(passages) == 0 {
		return s.finishAnswer(ctx, inMethodLogger, job, NoRelevantContentAnswer, nil)
	}

	answer, citations := s.executeSynthesisStep(ctx, inMethodLogger, &job, passages)

	return s.finishAnswer(ctx, inMethodLogger, job, answer, citations)
}

// ProcessDocuments extracts every file of one ingest job. Files run
// concurrently under a bounded group; one document failing to extract
// marks only that document failed and never aborts its siblings.
func (s *service) ProcessDocuments(ctx context.Context, job jobModel.Job) jobModel.Job {
	inMethodLogger := s.logger.With(config.TRACE_ID_KEY, job.TraceId, "jobId", job.Id)
	job.CurrentStep = jobModel.IngestProcessing

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("document_ingestion", time.Since(start)) }()

	if len(job.Files) != len(job.DocumentIds) {
		return s.jobError(job, errDocumentCountMismatch, "INGESTION_FAILURE", false)
	}

	eg, groupCtx := errgroup.WithContext(ctx)
	eg.SetLimit(config.IngestConcurrencyLimit)
	for i := range job.Files {
		upload := job.Files[i]
		documentId := job.DocumentIds[i]
		eg.Go(func() error {
			s.processOneDocument(groupCtx, inMethodLogger, documentId, upload)
			return nil
		})
	}
	// Join only; per-document failures live on the document records.
	_ = eg.Wait()

	job.CurrentStep = jobModel.Done
	job.Status = jobModel.JobStatusComplete
	return job
}

func (s *service) processOneDocument(ctx context.Context, log *logger_i.Logger, documentId string, upload docModel.FileUpload) {
	doc, ok := s.documents.GetDocument(ctx, documentId)
	if !ok {
		log.Error("document record missing", "documentId", documentId)
		return
	}

	doc.Status = docModel.StatusProcessing
	if err := s.documents.SaveDocument(ctx, doc); err != nil {
		log.Error("failed to mark document processing", "documentId", documentId, "error", err)
	}

	pages, err := extract.Pages(upload.Name, upload.Data)
	if err != nil {
		log.Warn("document extraction failed", "documentId", documentId, "name", upload.Name, "error", err)
		doc.Status = docModel.StatusFailed
		doc.Error = err.Error()
		doc.Pages = nil
		metrics.IncrementDocumentsIngested("failed")
	} else {
		doc.Status = docModel.StatusReady
		doc.Error = ""
		doc.Pages = pages
		metrics.IncrementDocumentsIngested("ready")
	}

	if err := s.documents.SaveDocument(ctx, doc); err != nil {
		log.Error("failed to save extracted document", "documentId", documentId, "error", err)
	}
}
