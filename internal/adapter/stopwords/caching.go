package stopwords

import (
	"context"
	"errors"
	"fmt"

	"friendlytext/internal/domain"
	"friendlytext/internal/port"
	"go.uber.org/zap"
)

// CachingProvider serves lists from a cache and falls back to a slower source
// on a miss, storing what the source returns.
type CachingProvider struct {
	source     port.StopwordProvider
	cache      port.StopwordCache
	sourceName string
	logger     *zap.Logger
}

func NewCachingProvider(source port.StopwordProvider, cache port.StopwordCache, sourceName string, logger *zap.Logger) *CachingProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachingProvider{
		source:     source,
		cache:      cache,
		sourceName: sourceName,
		logger:     logger,
	}
}

func (p *CachingProvider) Stopwords(ctx context.Context, language string) (domain.StopwordSet, error) {
	lang := NormalizeLanguage(language)

	cached, err := p.cache.GetStopwords(lang)
	switch {
	case err == nil:
		p.logger.Debug("stopword cache hit",
			zap.String("language", lang),
			zap.Time("fetched_at", cached.FetchedAt))
		return cached.Set, nil
	case errors.Is(err, port.ErrNotCached):
		p.logger.Debug("stopword cache miss", zap.String("language", lang))
	default:
		// An unreadable entry is refetched rather than failing the run.
		p.logger.Warn("stopword cache read failed", zap.String("language", lang), zap.Error(err))
	}

	return p.Refresh(ctx, lang)
}

// Refresh fetches the list from the source and overwrites the cached copy.
func (p *CachingProvider) Refresh(ctx context.Context, language string) (domain.StopwordSet, error) {
	lang := NormalizeLanguage(language)

	set, err := p.source.Stopwords(ctx, lang)
	if err != nil {
		return domain.StopwordSet{}, err
	}

	if err := p.cache.PutStopwords(lang, set, p.sourceName); err != nil {
		return domain.StopwordSet{}, fmt.Errorf("failed to cache stopwords: %w", err)
	}

	return set, nil
}
