package store

import (
	"context"
	"encoding/json"

	"github.com/akolanti/DocQA/internal/adapter/utils"
	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/data/redisStore"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
	"github.com/akolanti/DocQA/pkg/logger_i"
)

const historyKey = "history:questions"

// RedisHistoryStore keeps the answered-question log in one capped list.
type RedisHistoryStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

// GetRedisHistoryStore returns nil when Redis is offline so the caller
// can decide whether to fall back to the in-memory store.
func GetRedisHistoryStore(ctx context.Context) *RedisHistoryStore {
	internalStore := redisStore.GetRedisStore(ctx, config.RedisHistoryStore)
	if internalStore == nil {
		return nil
	}
	return &RedisHistoryStore{
		store:  internalStore,
		logger: logger_i.NewLogger("HistoryStore"),
	}
}

func (s *RedisHistoryStore) AppendRecord(ctx context.Context, record qaModel.QuestionAnswer) error {
	log := s.logger.With(config.TRACE_ID_KEY, ctx.Value(config.TRACE_ID_KEY))
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	if err := s.store.ListPush(ctx, historyKey, data); err != nil {
		log.Error("error appending history record", "error", err)
		return err
	}
	if err := s.store.ListTrimLast(ctx, historyKey, config.HistoryMaxRecords); err != nil {
		log.Error("error trimming history list", "error", err)
	}
	if err := s.store.Expire(ctx, historyKey, config.RedisHistoryStoreTTL); err != nil {
		log.Error("error refreshing history ttl", "error", err)
	}
	log.Debug("Saved history record")
	return nil
}

// RecentRecords returns up to limit records, newest first.
func (s *RedisHistoryStore) RecentRecords(ctx context.Context, limit int64) ([]qaModel.QuestionAnswer, error) {
	log := s.logger.With(config.TRACE_ID_KEY, ctx.Value(config.TRACE_ID_KEY))

	raw, err := s.store.ListGetLast(ctx, historyKey, limit)
	if err != nil {
		log.Error("error getting history", "error", err)
		return nil, err
	}

	records := make([]qaModel.QuestionAnswer, 0, len(raw))
	for _, entry := range utils.ReverseStringArray(raw) {
		var record qaModel.QuestionAnswer
		if err := json.Unmarshal([]byte(entry), &record); err != nil {
			log.Error("Skipping undecodable history record", "error", err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func TestHistoryStore(store *redisStore.Store) *RedisHistoryStore {
	return &RedisHistoryStore{
		store:  store,
		logger: logger_i.NewLogger("test redis"),
	}
}
