// Package store is the device-local persistence layer: a single bbolt file
// with one bucket per storage key. Each bucket maps a device ID to an opaque
// serialized blob and is written by exactly one owning component, so no
// cross-component locking is needed beyond what bbolt provides.
package store

import (
	"os"
	"path"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// Bucket names mirror the storage keys of the original client build.
const (
	BucketSession = "artgallery_user"
	BucketCart    = "artgallery_cart"
)

// Store wraps the bbolt database.
type Store struct {
	db *bolt.DB
}

// Open creates or opens the store file under workdir and ensures all
// buckets exist.
func Open(workdir string) (*Store, error) {
	if err := os.MkdirAll(workdir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create workdir")
	}
	db, err := bolt.Open(path.Join(workdir, "artistry.db"), 0o600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{BucketSession, BucketCart} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init buckets")
	}
	return &Store{db: db}, nil
}

// Get returns the stored value for key, or nil when absent.
func (s *Store) Get(bucket, key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucket)).Get([]byte(key))
		if v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	return out, err
}

// Put writes the value for key, replacing any previous value.
func (s *Store) Put(bucket, key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucket)).Put([]byte(key), value)
	})
}

// Delete removes the value for key. Deleting an absent key is a no-op.
func (s *Store) Delete(bucket, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucket)).Delete([]byte(key))
	})
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
