package store

import (
	"context"
	"sync"

	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
)

type InMemoryHistoryStore struct {
	histMutex *sync.RWMutex
	records   []qaModel.QuestionAnswer
}

func InitInMemoryHistoryStore() *InMemoryHistoryStore {
	return &InMemoryHistoryStore{
		histMutex: new(sync.RWMutex),
		records:   make([]qaModel.QuestionAnswer, 0, config.HistoryMaxRecords),
	}
}

func (store *InMemoryHistoryStore) AppendRecord(ctx context.Context, record qaModel.QuestionAnswer) error {
	store.histMutex.Lock()
	defer store.histMutex.Unlock()

	store.records = append(store.records, record)
	if overflow := int64(len(store.records)) - config.HistoryMaxRecords; overflow > 0 {
		store.records = store.records[overflow:]
	}
	return nil
}

// RecentRecords returns up to limit records, newest first.
func (store *InMemoryHistoryStore) RecentRecords(ctx context.Context, limit int64) ([]qaModel.QuestionAnswer, error) {
	store.histMutex.RLock()
	defer store.histMutex.RUnlock()

	if limit > int64(len(store.records)) {
		limit = int64(len(store.records))
	}
	recent := make([]qaModel.QuestionAnswer, 0, limit)
	for i := len(store.records) - 1; i >= len(store.records)-int(limit); i-- {
		recent = append(recent, store.records[i])
	}
	return recent, nil
}
