package mcpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/akolanti/DocQA/internal/domain/docModel"
	"github.com/akolanti/DocQA/internal/domain/jobModel"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
)

type mockQAService struct {
	LastJob  jobModel.Job
	OnAnswer func(ctx context.Context, job jobModel.Job) jobModel.Job
}

func (m *mockQAService) AnswerQuestion(ctx context.Context, job jobModel.Job) jobModel.Job {
	m.LastJob = job
	if m.OnAnswer != nil {
		return m.OnAnswer(ctx, job)
	}
	job.Status = jobModel.JobStatusComplete
	job.Result = &qaModel.QuestionAnswer{
		Question: job.Question,
		Answer:   "the answer",
		Sources: []qaModel.Citation{
			{DocumentName: "report.pdf", Page: 3, Excerpt: "relevant text..."},
		},
	}
	return job
}

func (m *mockQAService) ProcessDocuments(ctx context.Context, job jobModel.Job) jobModel.Job {
	return job
}

type mockDocumentStore struct {
	Docs    []docModel.Document
	ListErr error
}

func (m *mockDocumentStore) SaveDocument(ctx context.Context, doc docModel.Document) error {
	return nil
}

func (m *mockDocumentStore) GetDocument(ctx context.Context, id string) (docModel.Document, bool) {
	return docModel.Document{}, false
}

func (m *mockDocumentStore) ListDocuments(ctx context.Context) ([]docModel.Document, error) {
	return m.Docs, m.ListErr
}

func (m *mockDocumentStore) DeleteDocument(ctx context.Context, id string) {}

func newTestServer(t *testing.T, qaSvc *mockQAService, docs *mockDocumentStore) *Server {
	t.Helper()
	srv, err := NewServer(&Params{QA: qaSvc, Documents: docs})
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return srv
}

func TestNewServer_Validation(t *testing.T) {
	_, err := NewServer(&Params{Documents: &mockDocumentStore{}})
	if !errors.Is(err, ErrMissingQAService) {
		t.Errorf("Expected ErrMissingQAService, got %v", err)
	}

	_, err = NewServer(&Params{QA: &mockQAService{}})
	if !errors.Is(err, ErrMissingDocumentStore) {
		t.Errorf("Expected ErrMissingDocumentStore, got %v", err)
	}
}

func TestHandleAskQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the pipeline answer with sources", func(t *testing.T) {
		qaSvc := &mockQAService{}
		srv := newTestServer(t, qaSvc, &mockDocumentStore{})

		_, output, err := srv.handleAskQuestion(ctx, nil, AskInput{Question: "What is in the report?"})
		if err != nil {
			t.Fatalf("handleAskQuestion failed: %v", err)
		}
		if output.Answer != "the answer" {
			t.Errorf("Answer mismatch: got %q", output.Answer)
		}
		if len(output.Sources) != 1 || output.Sources[0].Document != "report.pdf" || output.Sources[0].Page != 3 {
			t.Errorf("Sources mismatch: got %+v", output.Sources)
		}
	})

	t.Run("empty question is rejected", func(t *testing.T) {
		srv := newTestServer(t, &mockQAService{}, &mockDocumentStore{})

		_, _, err := srv.handleAskQuestion(ctx, nil, AskInput{Question: "   "})
		if err == nil {
			t.Error("Expected error for blank question")
		}
	})

	t.Run("defaults to the local provider", func(t *testing.T) {
		qaSvc := &mockQAService{}
		srv := newTestServer(t, qaSvc, &mockDocumentStore{})

		_, _, err := srv.handleAskQuestion(ctx, nil, AskInput{Question: "anything"})
		if err != nil {
			t.Fatalf("handleAskQuestion failed: %v", err)
		}
		if qaSvc.LastJob.AI.Provider != qaModel.ProviderLocal {
			t.Errorf("Expected local provider, got %q", qaSvc.LastJob.AI.Provider)
		}
	})

	t.Run("provider override reaches the pipeline", func(t *testing.T) {
		qaSvc := &mockQAService{}
		srv := newTestServer(t, qaSvc, &mockDocumentStore{})

		input := AskInput{Question: "anything", Provider: "openai", Model: "gpt-4o-mini", APIKey: "sk-test"}
		_, _, err := srv.handleAskQuestion(ctx, nil, input)
		if err != nil {
			t.Fatalf("handleAskQuestion failed: %v", err)
		}
		got := qaSvc.LastJob.AI
		if got.Provider != qaModel.ProviderOpenAI || got.Model != "gpt-4o-mini" || got.APIKey != "sk-test" {
			t.Errorf("AI config mismatch: got %+v", got)
		}
	})

	t.Run("unknown provider is rejected", func(t *testing.T) {
		srv := newTestServer(t, &mockQAService{}, &mockDocumentStore{})

		_, _, err := srv.handleAskQuestion(ctx, nil, AskInput{Question: "anything", Provider: "mistral"})
		if err == nil {
			t.Error("Expected error for unknown provider")
		}
	})

	t.Run("pipeline error surfaces as tool error", func(t *testing.T) {
		qaSvc := &mockQAService{
			OnAnswer: func(ctx context.Context, job jobModel.Job) jobModel.Job {
				job.Status = jobModel.JobStatusError
				job.Error = jobModel.JobError{Code: 500, Message: "Internal Server Error"}
				return job
			},
		}
		srv := newTestServer(t, qaSvc, &mockDocumentStore{})

		_, _, err := srv.handleAskQuestion(ctx, nil, AskInput{Question: "anything"})
		if err == nil {
			t.Error("Expected error when the pipeline fails")
		}
	})
}

func TestHandleListDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("maps stored documents", func(t *testing.T) {
		docs := &mockDocumentStore{
			Docs: []docModel.Document{
				{Id: "doc-1", Name: "a.pdf", Status: docModel.StatusReady, Pages: []string{"p1", "p2"}},
				{Id: "doc-2", Name: "b.docx", Status: docModel.StatusFailed, Error: "extract b.docx: no text"},
			},
		}
		srv := newTestServer(t, &mockQAService{}, docs)

		_, output, err := srv.handleListDocuments(ctx, nil, ListDocumentsInput{})
		if err != nil {
			t.Fatalf("handleListDocuments failed: %v", err)
		}
		if output.Count != 2 {
			t.Fatalf("Expected 2 documents, got %d", output.Count)
		}
		if output.Documents[0].PageCount != 2 {
			t.Errorf("Expected page count 2, got %d", output.Documents[0].PageCount)
		}
		if output.Documents[1].Status != "failed" || output.Documents[1].Error == "" {
			t.Errorf("Failed document state lost: %+v", output.Documents[1])
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		docs := &mockDocumentStore{ListErr: errors.New("redis gone")}
		srv := newTestServer(t, &mockQAService{}, docs)

		_, _, err := srv.handleListDocuments(ctx, nil, ListDocumentsInput{})
		if err == nil {
			t.Error("Expected error when the store fails")
		}
	})
}
