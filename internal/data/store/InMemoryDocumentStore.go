package store

import (
	"context"
	"sort"
	"sync"

	"github.com/akolanti/DocQA/internal/domain/docModel"
)

type InMemoryDocumentStore struct {
	docMutex *sync.RWMutex
	docMap   map[string]docModel.Document
}

func InitInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{
		docMutex: new(sync.RWMutex),
		docMap:   make(map[string]docModel.Document),
	}
}

func (store *InMemoryDocumentStore) SaveDocument(ctx context.Context, doc docModel.Document) error {
	store.docMutex.Lock()
	defer store.docMutex.Unlock()
	store.docMap[doc.Id] = doc
	return nil
}

func (store *InMemoryDocumentStore) GetDocument(ctx context.Context, id string) (docModel.Document, bool) {
	store.docMutex.RLock()
	defer store.docMutex.RUnlock()
	doc, found := store.docMap[id]
	return doc, found
}

// ListDocuments returns documents in upload order, matching the Redis
// store, so query results rank ties the same either way.
func (store *InMemoryDocumentStore) ListDocuments(ctx context.Context) ([]docModel.Document, error) {
	store.docMutex.RLock()
	defer store.docMutex.RUnlock()

	documents := make([]docModel.Document, 0, len(store.docMap))
	for _, doc := range store.docMap {
		documents = append(documents, doc)
	}
	sort.SliceStable(documents, func(a, b int) bool {
		if documents[a].UploadedAt.Equal(documents[b].UploadedAt) {
			return documents[a].Id < documents[b].Id
		}
		return documents[a].UploadedAt.Before(documents[b].UploadedAt)
	})
	return documents, nil
}

func (store *InMemoryDocumentStore) DeleteDocument(ctx context.Context, id string) {
	store.docMutex.Lock()
	defer store.docMutex.Unlock()
	delete(store.docMap, id)
}
