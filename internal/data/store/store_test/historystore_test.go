package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/data/redisStore"
	"github.com/akolanti/DocQA/internal/data/store"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedisHistoryStore_NewestFirst(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	histStore := store.TestHistoryStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "hist-trace")

	asked := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 8; i++ {
		record := qaModel.QuestionAnswer{
			Question: fmt.Sprintf("question %d", i),
			Answer:   fmt.Sprintf("answer %d", i),
			AskedAt:  asked.Add(time.Duration(i) * time.Minute),
		}
		if err := histStore.AppendRecord(ctx, record); err != nil {
			t.Fatalf("AppendRecord failed: %v", err)
		}
	}

	recent, err := histStore.RecentRecords(ctx, 5)
	if err != nil {
		t.Fatalf("RecentRecords failed: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("Expected 5 records, got %d", len(recent))
	}

	// Most recent question comes back first.
	for i, want := range []string{"question 8", "question 7", "question 6", "question 5", "question 4"} {
		if recent[i].Question != want {
			t.Errorf("Position %d: got %q, want %q", i, recent[i].Question, want)
		}
	}
}

func TestRedisHistoryStore_CapsStoredRecords(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	histStore := store.TestHistoryStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "cap-trace")

	total := int(config.HistoryMaxRecords) + 20
	for i := 0; i < total; i++ {
		record := qaModel.QuestionAnswer{Question: fmt.Sprintf("q%d", i)}
		if err := histStore.AppendRecord(ctx, record); err != nil {
			t.Fatalf("AppendRecord failed: %v", err)
		}
	}

	stored, err := client.LLen(ctx, "history:questions").Result()
	if err != nil {
		t.Fatalf("LLen failed: %v", err)
	}
	if stored != config.HistoryMaxRecords {
		t.Errorf("Expected list capped at %d, got %d", config.HistoryMaxRecords, stored)
	}

	// The survivors are the newest records.
	recent, err := histStore.RecentRecords(ctx, 1)
	if err != nil {
		t.Fatalf("RecentRecords failed: %v", err)
	}
	if len(recent) != 1 || recent[0].Question != fmt.Sprintf("q%d", total-1) {
		t.Errorf("Newest record lost after trimming: got %+v", recent)
	}
}

func TestRedisHistoryStore_EmptyHistory(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	histStore := store.TestHistoryStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "empty-trace")

	recent, err := histStore.RecentRecords(ctx, 5)
	if err != nil {
		t.Fatalf("RecentRecords failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Expected no records, got %d", len(recent))
	}
}
