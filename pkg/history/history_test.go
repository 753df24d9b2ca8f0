package history

import (
	"fmt"
	"testing"
	"time"
)

func testLog(store Store) *Log {
	log := NewLog(store)
	counter := 0
	log.Now = func() time.Time {
		counter++
		return time.Date(2025, 3, 1, 12, 0, counter, 0, time.UTC)
	}
	sequence := 0
	log.NewID = func() string {
		sequence++
		return fmt.Sprintf("rec-%d", sequence)
	}
	return log
}

func TestAppendIsNewestFirst(t *testing.T) {
	log := testLog(NewMemoryStore())

	first, err := log.Append(KindMPTIssuanceCreate, "req-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := log.Append(KindPayment, "req-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := log.Records()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != second.ID || records[1].ID != first.ID {
		t.Fatalf("expected newest first, got %v", records)
	}
	if records[0].Kind != KindPayment || records[0].RequestID != "req-2" {
		t.Fatalf("unexpected record: %+v", records[0])
	}
	if records[0].IntentID != "" {
		t.Fatalf("intent id must start empty, got %s", records[0].IntentID)
	}
}

func TestSetIntentID(t *testing.T) {
	log := testLog(NewMemoryStore())

	record, err := log.Append(KindMPTAuthorize, "req-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := log.SetIntentID(record.ID, "intent-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := log.Records()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records[0].IntentID != "intent-1" {
		t.Fatalf("expected intent id to be set, got %+v", records[0])
	}

	if err := log.SetIntentID("missing", "intent-2"); err == nil {
		t.Fatal("expected error for unknown record")
	}
}

func TestClear(t *testing.T) {
	log := testLog(NewMemoryStore())
	if _, err := log.Append(KindMPTIssuanceSet, "req-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := log.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := log.Records()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty log, got %v", records)
	}
}

func TestMemoryStoreCopiesRecords(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Save([]Record{{ID: "rec-1"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded[0].ID = "mutated"

	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reloaded[0].ID != "rec-1" {
		t.Fatal("store must not share its backing slice with callers")
	}
}

func TestBadgerStorePersistsAcrossReopen(t *testing.T) {
	path := t.TempDir()

	store, err := OpenBadgerStore(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	log := testLog(store)
	record, err := log.Append(KindMPTIssuanceDestroy, "req-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := log.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	reopened, err := OpenBadgerStore(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer func() {
		if err := reopened.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}()

	records, err := reopened.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].ID != record.ID {
		t.Fatalf("expected persisted record, got %v", records)
	}
	if !records[0].SubmittedAt.Equal(record.SubmittedAt) {
		t.Fatalf("timestamp did not survive: %v vs %v", records[0].SubmittedAt, record.SubmittedAt)
	}
}

func TestBadgerStoreLoadEmpty(t *testing.T) {
	store, err := OpenBadgerStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}()

	records, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %v", records)
	}
}
