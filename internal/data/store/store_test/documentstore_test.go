package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/data/redisStore"
	"github.com/akolanti/DocQA/internal/data/store"
	"github.com/akolanti/DocQA/internal/domain/docModel"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedisDocumentStore_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	docStore := store.TestDocumentStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")

	testDoc := docModel.Document{
		Id:          "doc_abc_123",
		Name:        "handbook.pdf",
		SizeLabel:   "2.4 MB",
		ContentType: docModel.PDF,
		Status:      docModel.StatusReady,
		Pages:       []string{"page one text", "page two text"},
		UploadedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("Save and Get Roundtrip", func(t *testing.T) {
		if err := docStore.SaveDocument(ctx, testDoc); err != nil {
			t.Fatalf("SaveDocument failed: %v", err)
		}

		retrieved, found := docStore.GetDocument(ctx, testDoc.Id)
		if !found {
			t.Fatal("Document was saved but not found in Redis")
		}
		if retrieved.Name != testDoc.Name {
			t.Errorf("Name mismatch! Got %s, want %s", retrieved.Name, testDoc.Name)
		}
		if len(retrieved.Pages) != 2 {
			t.Errorf("Expected 2 pages after roundtrip, got %d", len(retrieved.Pages))
		}
	})

	t.Run("Keys Are Prefixed", func(t *testing.T) {
		if !mr.Exists("doc:" + testDoc.Id) {
			t.Error("Document not stored under the doc: prefix")
		}
	})

	t.Run("Get Non-Existent Document", func(t *testing.T) {
		_, found := docStore.GetDocument(ctx, "ghost-id")
		if found {
			t.Error("Expected found=false for non-existent key")
		}
	})

	t.Run("Delete Document", func(t *testing.T) {
		docStore.DeleteDocument(ctx, testDoc.Id)
		if mr.Exists("doc:" + testDoc.Id) {
			t.Error("Document still exists in Redis after DeleteDocument call")
		}
	})
}

func TestRedisDocumentStore_ListOrder(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	docStore := store.TestDocumentStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "order-trace")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	docs := []docModel.Document{
		{Id: "doc_c", Name: "third.pdf", UploadedAt: base.Add(2 * time.Minute)},
		{Id: "doc_a", Name: "first.pdf", UploadedAt: base},
		{Id: "doc_b", Name: "second.pdf", UploadedAt: base.Add(time.Minute)},
	}
	for _, d := range docs {
		if err := docStore.SaveDocument(ctx, d); err != nil {
			t.Fatalf("SaveDocument failed: %v", err)
		}
	}

	listed, err := docStore.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("Expected 3 documents, got %d", len(listed))
	}

	wantOrder := []string{"first.pdf", "second.pdf", "third.pdf"}
	for i, want := range wantOrder {
		if listed[i].Name != want {
			t.Errorf("Position %d: got %s, want %s", i, listed[i].Name, want)
		}
	}
}

func TestRedisDocumentStore_ListSkipsExpired(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	docStore := store.TestDocumentStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "expiry-trace")

	if err := docStore.SaveDocument(ctx, docModel.Document{Id: "doc_keep", Name: "keep.pdf"}); err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}
	if err := docStore.SaveDocument(ctx, docModel.Document{Id: "doc_gone", Name: "gone.pdf"}); err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}

	// Age out one record; the listing should no longer see it.
	mr.SetTTL("doc:doc_gone", time.Second)
	mr.FastForward(2 * time.Second)

	listed, err := docStore.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("Expected 1 document after expiry, got %d", len(listed))
	}
	if listed[0].Name != "keep.pdf" {
		t.Errorf("Wrong survivor: got %s, want keep.pdf", listed[0].Name)
	}
}
