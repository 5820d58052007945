package port

import (
	"context"
	"errors"
	"time"

	"friendlytext/internal/domain"
)

// StopwordProvider returns the stopword set for a language.
type StopwordProvider interface {
	Stopwords(ctx context.Context, language string) (domain.StopwordSet, error)
}

// StopwordCache persists stopword sets fetched from a slower source.
type StopwordCache interface {
	GetStopwords(language string) (CachedStopwords, error)

	PutStopwords(language string, set domain.StopwordSet, source string) error

	DeleteStopwords(language string) error
}

// CachedStopwords is a stopword set together with where and when it was fetched.
type CachedStopwords struct {
	Set       domain.StopwordSet
	Source    string
	FetchedAt time.Time
}

// ErrNotCached is returned by a StopwordCache when it holds no list for a language.
var ErrNotCached = errors.New("stopwords not cached")
