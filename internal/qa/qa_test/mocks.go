package qa_test

import (
	"context"
	"sync"

	"github.com/akolanti/DocQA/internal/domain/docModel"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
	"github.com/akolanti/DocQA/internal/qa/llm"
	"github.com/akolanti/DocQA/internal/qa/llm/local"
)

// MockDocumentStore implements docModel.DocumentStore over a slice. The
// mutex matters: ingest jobs write documents from concurrent goroutines.
type MockDocumentStore struct {
	mu   sync.Mutex
	Docs []docModel.Document

	OnListDocuments func(ctx context.Context) ([]docModel.Document, error)
}

func (m *MockDocumentStore) SaveDocument(ctx context.Context, doc docModel.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Docs {
		if m.Docs[i].Id == doc.Id {
			m.Docs[i] = doc
			return nil
		}
	}
	m.Docs = append(m.Docs, doc)
	return nil
}

func (m *MockDocumentStore) GetDocument(ctx context.Context, id string) (docModel.Document, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range m.Docs {
		if doc.Id == id {
			return doc, true
		}
	}
	return docModel.Document{}, false
}

func (m *MockDocumentStore) ListDocuments(ctx context.Context) ([]docModel.Document, error) {
	if m.OnListDocuments != nil {
		return m.OnListDocuments(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]docModel.Document, len(m.Docs))
	copy(out, m.Docs)
	return out, nil
}

func (m *MockDocumentStore) DeleteDocument(ctx context.Context, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Docs {
		if m.Docs[i].Id == id {
			m.Docs = append(m.Docs[:i], m.Docs[i+1:]...)
			return
		}
	}
}

// MockHistoryStore implements qaModel.HistoryStore.
type MockHistoryStore struct {
	mu      sync.Mutex
	Records []qaModel.QuestionAnswer

	OnAppendRecord func(ctx context.Context, record qaModel.QuestionAnswer) error
}

func (m *MockHistoryStore) AppendRecord(ctx context.Context, record qaModel.QuestionAnswer) error {
	if m.OnAppendRecord != nil {
		return m.OnAppendRecord(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records = append(m.Records, record)
	return nil
}

func (m *MockHistoryStore) RecentRecords(ctx context.Context, limit int64) ([]qaModel.QuestionAnswer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []qaModel.QuestionAnswer
	for i := len(m.Records) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, m.Records[i])
	}
	return out, nil
}

// MockStrategySource implements qa.StrategySource. The default chain is
// the real local strategy, so scenarios stay network-free.
type MockStrategySource struct {
	Calls      int
	OnChainFor func(cfg qaModel.AIConfig) []llm.Provider
}

func (m *MockStrategySource) ChainFor(cfg qaModel.AIConfig) []llm.Provider {
	m.Calls++
	if m.OnChainFor != nil {
		return m.OnChainFor(cfg)
	}
	return []llm.Provider{local.NewClient()}
}

// MockStrategy implements llm.Provider.
type MockStrategy struct {
	StrategyName string
	Calls        int
	OnGenerate   func(ctx context.Context, question string, contextText string, passages []qaModel.Passage) (string, error)
}

func (m *MockStrategy) Name() string {
	if m.StrategyName != "" {
		return m.StrategyName
	}
	return "mock"
}

func (m *MockStrategy) Generate(ctx context.Context, question string, contextText string, passages []qaModel.Passage) (string, error) {
	m.Calls++
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, question, contextText, passages)
	}
	return "mocked llm response", nil
}
