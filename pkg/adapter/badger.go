package adapter

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/m-mizutani/goerr/v2"
)

// BadgerStorage implements Storage with an embedded BadgerDB, the default
// local backend for the history blob.
type BadgerStorage struct {
	db *badger.DB
}

// NewBadger opens (or creates) a BadgerDB at path
func NewBadger(path string) (*BadgerStorage, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open badger db", goerr.V("path", path))
	}
	return &BadgerStorage{db: db}, nil
}

// NewBadgerInMemory opens a non-persistent BadgerDB, used in tests
func NewBadgerInMemory() (*BadgerStorage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open in-memory badger db")
	}
	return &BadgerStorage{db: db}, nil
}

func (s *BadgerStorage) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, goerr.Wrap(ErrKeyNotFound, "no value for key", goerr.V("key", key))
		}
		return nil, goerr.Wrap(err, "failed to read from badger", goerr.V("key", key))
	}

	return data, nil
}

func (s *BadgerStorage) Set(ctx context.Context, key string, data []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to write to badger", goerr.V("key", key))
	}

	return nil
}

// Close releases the underlying database
func (s *BadgerStorage) Close() error {
	if err := s.db.Close(); err != nil {
		return goerr.Wrap(err, "failed to close badger db")
	}
	return nil
}
