package history

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kinds of submissions tracked by the dashboard.
const (
	KindMPTAuthorize       = "MPTAuthorize"
	KindMPTIssuanceCreate  = "MPTIssuanceCreate"
	KindMPTIssuanceSet     = "MPTIssuanceSet"
	KindMPTIssuanceDestroy = "MPTIssuanceDestroy"
	KindPayment            = "Payment"
)

// Record is one submitted intent. IntentID starts empty and is filled in
// once the backend's request state reports the assigned intent.
type Record struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	RequestID   string    `json:"requestId"`
	IntentID    string    `json:"intentId,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Store persists the full record list. Implementations need not be
// concurrency-safe; Log serializes access.
type Store interface {
	Load() ([]Record, error)
	Save(records []Record) error
	Close() error
}

// Log is an append-only, newest-first list of submitted intents.
type Log struct {
	store Store

	mutex sync.Mutex
	Now   func() time.Time
	NewID func() string
}

// NewLog creates a Log over the given store.
func NewLog(store Store) *Log {
	return &Log{store: store}
}

func (l *Log) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

func (l *Log) newID() string {
	if l.NewID != nil {
		return l.NewID()
	}
	return uuid.NewString()
}

// Append prepends a new record and returns it.
func (l *Log) Append(kind string, requestID string) (Record, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	records, err := l.store.Load()
	if err != nil {
		return Record{}, err
	}

	record := Record{
		ID:          l.newID(),
		Kind:        kind,
		RequestID:   requestID,
		SubmittedAt: l.now().UTC(),
	}
	records = append([]Record{record}, records...)
	if err := l.store.Save(records); err != nil {
		return Record{}, err
	}
	return record, nil
}

// SetIntentID records the intent id the backend assigned to a submission.
func (l *Log) SetIntentID(recordID string, intentID string) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	records, err := l.store.Load()
	if err != nil {
		return err
	}
	for index := range records {
		if records[index].ID == recordID {
			records[index].IntentID = intentID
			return l.store.Save(records)
		}
	}
	return fmt.Errorf("history record %s not found", recordID)
}

// Records returns the log, newest first.
func (l *Log) Records() ([]Record, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.store.Load()
}

// Clear removes every record.
func (l *Log) Clear() error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.store.Save([]Record{})
}

// Close releases the underlying store.
func (l *Log) Close() error {
	return l.store.Close()
}

// MemoryStore keeps records in memory.
type MemoryStore struct {
	records []Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() ([]Record, error) {
	cloned := make([]Record, len(s.records))
	copy(cloned, s.records)
	return cloned, nil
}

func (s *MemoryStore) Save(records []Record) error {
	cloned := make([]Record, len(records))
	copy(cloned, records)
	s.records = cloned
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
