package usecase

import (
	"context"
	"fmt"

	"friendlytext/internal/domain"
	"friendlytext/internal/port"
	"go.uber.org/zap"
)

// StopwordSources lists everything that contributes to the final stopword set.
type StopwordSources struct {
	Base    port.StopwordProvider // language list, required
	Files   port.StopwordProvider // custom word lists, optional
	Extra   []string
	Exclude []string
}

// StopwordLoader resolves the stopword set once, before any text is cleaned.
type StopwordLoader struct {
	sources StopwordSources
	logger  *zap.Logger
}

// NewStopwordLoader creates a new stopword loader.
func NewStopwordLoader(sources StopwordSources, logger *zap.Logger) *StopwordLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StopwordLoader{
		sources: sources,
		logger:  logger,
	}
}

// Load returns the base list plus custom files and extra words, minus
// excluded words.
func (l *StopwordLoader) Load(ctx context.Context, language string) (domain.StopwordSet, error) {
	if l.sources.Base == nil {
		return domain.StopwordSet{}, fmt.Errorf("no stopword provider configured")
	}

	set, err := l.sources.Base.Stopwords(ctx, language)
	if err != nil {
		return domain.StopwordSet{}, fmt.Errorf("failed to load %s stopwords: %w", language, err)
	}
	baseLen := set.Len()

	if l.sources.Files != nil {
		custom, err := l.sources.Files.Stopwords(ctx, language)
		if err != nil {
			return domain.StopwordSet{}, fmt.Errorf("failed to load custom stopwords: %w", err)
		}
		set = set.Union(custom)
	}

	if len(l.sources.Extra) > 0 {
		set = set.Union(domain.NewStopwordSet(l.sources.Extra...))
	}
	if len(l.sources.Exclude) > 0 {
		set = set.Without(l.sources.Exclude...)
	}

	l.logger.Debug("resolved stopwords",
		zap.String("language", language),
		zap.Int("base", baseLen),
		zap.Int("total", set.Len()))

	return set, nil
}
