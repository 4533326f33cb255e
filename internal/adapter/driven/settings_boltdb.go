package driven

import (
	"context"
	"errors"

	"go.etcd.io/bbolt"

	"github.com/alorle/ace-launcher/internal/port/driven"
)

const (
	settingsBucket = "settings"
)

// SettingsBoltDBStore implements the SettingsStore port using BoltDB.
type SettingsBoltDBStore struct {
	db *bbolt.DB
}

// NewSettingsBoltDBStore creates a new BoltDB-backed settings store.
// It initializes the required bucket if it doesn't exist.
func NewSettingsBoltDBStore(db *bbolt.DB) (*SettingsBoltDBStore, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	// Create the settings bucket if it doesn't exist
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(settingsBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &SettingsBoltDBStore{db: db}, nil
}

// Get retrieves the value stored under key.
func (s *SettingsBoltDBStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var (
		value string
		found bool
	)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(settingsBucket))
		if bucket == nil {
			return errors.New("settings bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return nil
		}

		// data is only valid inside the transaction
		value = string(data)
		found = true
		return nil
	})

	return value, found, err
}

// Set stores value under key.
func (s *SettingsBoltDBStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(settingsBucket))
		if bucket == nil {
			return errors.New("settings bucket not found")
		}

		return bucket.Put([]byte(key), []byte(value))
	})
}

// Ping checks if the BoltDB database is accessible and operational.
func (s *SettingsBoltDBStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(settingsBucket)) == nil {
			return errors.New("settings bucket not found")
		}
		return nil
	})
}

// Ensure SettingsBoltDBStore implements the driven.SettingsStore interface
var _ driven.SettingsStore = (*SettingsBoltDBStore)(nil)
