package store

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/data/redisStore"
	"github.com/akolanti/DocQA/internal/domain/docModel"
	"github.com/akolanti/DocQA/pkg/logger_i"
)

// Documents live under a key prefix and are listed by scan, so a record
// aging out via TTL disappears from listings without any index upkeep.
const documentKeyPrefix = "doc:"

type RedisDocumentStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

// GetRedisDocumentStore returns nil when Redis is offline so the caller
// can decide whether to fall back to the in-memory store.
func GetRedisDocumentStore(ctx context.Context) *RedisDocumentStore {
	internalStore := redisStore.GetRedisStore(ctx, config.RedisDocumentStore)
	if internalStore == nil {
		return nil
	}
	return &RedisDocumentStore{
		store:  internalStore,
		logger: logger_i.NewLogger("DocumentStore"),
	}
}

func (s *RedisDocumentStore) SaveDocument(ctx context.Context, doc docModel.Document) error {
	log := s.logger.With(config.TRACE_ID_KEY, ctx.Value(config.TRACE_ID_KEY), "document Id", doc.Id)
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	err = s.store.Set(ctx, documentKeyPrefix+doc.Id, data, config.RedisDocumentStoreTTL)
	if err == nil {
		log.Debug("Saved document to Redis")
	}
	return err
}

func (s *RedisDocumentStore) GetDocument(ctx context.Context, id string) (docModel.Document, bool) {
	var doc docModel.Document
	log := s.logger.With(config.TRACE_ID_KEY, ctx.Value(config.TRACE_ID_KEY), "document Id", id)
	val, err := s.store.Get(ctx, documentKeyPrefix+id)
	if s.store.IsNil(err) {
		return doc, false
	} else if err != nil {
		log.Error("Failed to read document from Redis", "error", err)
		return doc, false
	}

	if err = json.Unmarshal([]byte(val), &doc); err != nil {
		log.Error("Failed to unmarshal stored document", "error", err)
		return doc, false
	}
	return doc, true
}

// ListDocuments returns every stored document in upload order. Scan order
// is arbitrary, so the sort restores the encounter order the scorer's
// tie-break depends on.
func (s *RedisDocumentStore) ListDocuments(ctx context.Context) ([]docModel.Document, error) {
	keys, err := s.store.ScanKeys(ctx, documentKeyPrefix+"*")
	if err != nil {
		return nil, err
	}

	documents := make([]docModel.Document, 0, len(keys))
	for _, key := range keys {
		val, err := s.store.Get(ctx, key)
		if s.store.IsNil(err) {
			continue // expired between scan and get
		} else if err != nil {
			return nil, err
		}
		var doc docModel.Document
		if err := json.Unmarshal([]byte(val), &doc); err != nil {
			s.logger.Error("Skipping undecodable document record", "key", key, "error", err)
			continue
		}
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

func (s *RedisDocumentStore) DeleteDocument(ctx context.Context, id string) {
	err := s.store.Del(ctx, documentKeyPrefix+id)
	if err != nil {
		s.logger.Error("Error deleting document from Redis", "documentId", id, "error", err)
		return
	}
	s.logger.Debug("Document deleted from Redis", "documentId", id)
}

func TestDocumentStore(store *redisStore.Store) *RedisDocumentStore {
	return &RedisDocumentStore{
		store:  store,
		logger: logger_i.NewLogger("test redis"),
	}
}
