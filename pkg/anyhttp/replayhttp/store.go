// Package replayhttp records real HTTP exchanges into a BoltDB file and
// plays them back offline. A Recorder wraps a live anyhttp.Client and
// persists every successful exchange; a Replayer serves recorded exchanges
// without touching the network, which makes it a heavier-weight companion
// to mockhttp for tests that want real captured traffic.
package replayhttp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/samvad-hq/anyhttp/pkg/anyhttp"
)

const exchangeBucket = "exchanges"

// exchange is the stored form of one request/response pair.
type exchange struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// Store is a BoltDB-backed exchange store. Exchanges are keyed by method
// and URL; recording the same key twice keeps the latest exchange.
type Store struct {
	db *bolt.DB
}

// Open initializes the store at path, creating parent directories as
// needed.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(exchangeBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Len reports the number of recorded exchanges.
func (s *Store) Len() (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(exchangeBucket))
		if bucket == nil {
			return fmt.Errorf("exchange bucket missing")
		}
		n = bucket.Stats().KeyN
		return nil
	})
	return n, err
}

func (s *Store) put(key string, ex exchange) error {
	value, err := json.Marshal(ex)
	if err != nil {
		return fmt.Errorf("encode exchange: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(exchangeBucket))
		if bucket == nil {
			return fmt.Errorf("exchange bucket missing")
		}
		return bucket.Put([]byte(key), value)
	})
}

func (s *Store) get(key string) (exchange, bool, error) {
	var (
		ex    exchange
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(exchangeBucket))
		if bucket == nil {
			return fmt.Errorf("exchange bucket missing")
		}
		value := bucket.Get([]byte(key))
		if value == nil {
			return nil
		}
		if err := json.Unmarshal(value, &ex); err != nil {
			return fmt.Errorf("decode exchange: %w", err)
		}
		found = true
		return nil
	})
	return ex, found, err
}

// exchangeKey identifies an exchange by the request line.
func exchangeKey(req *anyhttp.Request) string {
	return req.Method + " " + req.URL
}
