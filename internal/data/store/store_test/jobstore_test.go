package store_test

import (
	"context"
	"strings"
	"testing"

	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/data/redisStore"
	"github.com/akolanti/DocQA/internal/data/store"
	"github.com/akolanti/DocQA/internal/domain/jobModel"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedisJobStore_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	internalStore := redisStore.NewTestStore(client)
	jobStore := store.TestJobStore(internalStore)

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
	jobID := "job_abc_123"

	testJob := jobModel.Job{
		Id:       jobID,
		Kind:     jobModel.JobKindQuestion,
		Status:   jobModel.JobStatusRunning,
		Question: "How do I mock Redis?",
	}

	t.Run("Save and Get Roundtrip", func(t *testing.T) {
		err := jobStore.SaveJob(ctx, testJob)
		if err != nil {
			t.Fatalf("SaveJob failed: %v", err)
		}

		retrievedJob, found := jobStore.GetJob(ctx, jobID)
		if !found {
			t.Fatal("Job was saved but not found in Redis")
		}

		if retrievedJob.Question != testJob.Question {
			t.Errorf("Data mismatch! Got %s, want %s",
				retrievedJob.Question, testJob.Question)
		}
		if retrievedJob.Kind != jobModel.JobKindQuestion {
			t.Errorf("Kind mismatch! Got %s, want %s", retrievedJob.Kind, jobModel.JobKindQuestion)
		}
	})

	t.Run("AI Config Never Persisted", func(t *testing.T) {
		withKey := testJob
		withKey.AI.APIKey = "sk-super-secret"
		if err := jobStore.SaveJob(ctx, withKey); err != nil {
			t.Fatalf("SaveJob failed: %v", err)
		}

		raw, err := mr.Get(jobID)
		if err != nil {
			t.Fatalf("reading raw value: %v", err)
		}
		if strings.Contains(raw, "sk-super-secret") {
			t.Error("API key leaked into the persisted job record")
		}

		retrievedJob, _ := jobStore.GetJob(ctx, jobID)
		if retrievedJob.AI.APIKey != "" {
			t.Errorf("expected empty API key after roundtrip, got %q", retrievedJob.AI.APIKey)
		}
	})

	t.Run("Get Non-Existent Job", func(t *testing.T) {
		_, found := jobStore.GetJob(ctx, "ghost-id")
		if found {
			t.Error("Expected found=false for non-existent key")
		}
	})

	t.Run("Delete Job", func(t *testing.T) {
		jobStore.DeleteJob(ctx, jobID)

		if mr.Exists(jobID) {
			t.Error("Job still exists in Redis after DeleteJob call")
		}
	})
}

func TestRedisJobStore_Race(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	jobStore := store.TestJobStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "race-trace")
	job := jobModel.Job{Id: "race-job"}

	const workers = 50
	for i := 0; i < workers; i++ {
		go func() {
			_ = jobStore.SaveJob(ctx, job)
			_, _ = jobStore.GetJob(ctx, "race-job")
		}()
	}
}
