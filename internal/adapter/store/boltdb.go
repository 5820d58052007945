package store

import (
	"encoding/json"
	"fmt"
	"time"

	"friendlytext/internal/domain"
	"friendlytext/internal/port"
	"go.etcd.io/bbolt"
)

// ErrNotFound is returned when no stopword list is cached for a language.
var ErrNotFound = port.ErrNotCached

var (
	bucketStopwords = []byte("stopwords")
	bucketMeta      = []byte("meta")
)

type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketStopwords, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

type stopwordRecord struct {
	Words     []string `json:"words"`
	Source    string   `json:"source"`
	FetchedAt int64    `json:"fetched_at"`
}

func (s *BoltStore) GetStopwords(language string) (port.CachedStopwords, error) {
	var cached port.CachedStopwords
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStopwords).Get([]byte(language))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, language)
		}
		var rec stopwordRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("decode stopwords for %s: %w", language, err)
		}
		cached = port.CachedStopwords{
			Set:       domain.NewStopwordSet(rec.Words...),
			Source:    rec.Source,
			FetchedAt: time.Unix(rec.FetchedAt, 0),
		}
		return nil
	})
	return cached, err
}

func (s *BoltStore) PutStopwords(language string, set domain.StopwordSet, source string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		rec := stopwordRecord{
			Words:     set.Words(),
			Source:    source,
			FetchedAt: time.Now().Unix(),
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketStopwords).Put([]byte(language), data)
	})
}

func (s *BoltStore) DeleteStopwords(language string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketStopwords).Delete([]byte(language))
	})
}

// ListLanguages returns the cached languages in key order.
func (s *BoltStore) ListLanguages() ([]string, error) {
	var langs []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketStopwords).ForEach(func(k, _ []byte) error {
			langs = append(langs, string(k))
			return nil
		})
	})
	return langs, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
