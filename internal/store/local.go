package store

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// Local bucket and key names. The local tier is scoped to this instance's
// workdir and keyed by fixed string identifiers.
const (
	localBucketVenue  = "venue_settings"
	localBucketPromos = "promotions"

	localKeyVenue      = "default"
	localKeyActiveKeys = "active_keys"
)

// ErrLocalMiss is returned when the local store has no value for a key.
var ErrLocalMiss = errors.New("local store: key not found")

var localJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// LocalStore is the bbolt-backed fallback tier for venue settings and
// active promotion keys. It is never the source of truth: callers treat
// writes as best-effort and reads as a fallback when the record store is
// unreachable or empty.
type LocalStore struct {
	db *bolt.DB
}

// OpenLocal opens (creating if needed) the bbolt file at path.
func OpenLocal(path string) (*LocalStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open local store")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{localBucketVenue, localBucketPromos} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init local store buckets")
	}
	return &LocalStore{db: db}, nil
}

func (s *LocalStore) Close() error {
	return s.db.Close()
}

func (s *LocalStore) putJSON(bucket, key string, v interface{}) error {
	data, err := localJSON.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encode local value")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucket)).Put([]byte(key), data)
	})
}

func (s *LocalStore) getJSON(bucket, key string, v interface{}) error {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(bucket)).Get([]byte(key))
		if raw == nil {
			return ErrLocalMiss
		}
		data = append(data, raw...)
		return nil
	})
	if err != nil {
		return err
	}
	return errors.Wrap(localJSON.Unmarshal(data, v), "decode local value")
}
