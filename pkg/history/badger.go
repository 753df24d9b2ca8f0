package history

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

// Storage key for the serialized record list. The log is small and read
// whole, so everything lives under a single key.
const recordsKey = "submitted_intents"

// BadgerStore persists the record list in an embedded badger database.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens (or creates) a badger-backed store at path.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	options := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Load() ([]Record, error) {
	var records []Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(recordsKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &records)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load history records: %w", err)
	}
	return records, nil
}

func (s *BadgerStore) Save(records []Record) error {
	encoded, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode history records: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(recordsKey), encoded)
	})
	if err != nil {
		return fmt.Errorf("failed to save history records: %w", err)
	}
	return nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
