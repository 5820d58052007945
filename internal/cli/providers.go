package cli

import (
	"fmt"
	"io"

	"friendlytext/config"
	"friendlytext/internal/adapter/stopwords"
	"friendlytext/internal/adapter/store"
	"friendlytext/internal/port"
	"friendlytext/internal/usecase"
	"go.uber.org/zap"
)

// openCache opens the stopword cache for the project, clearing it when the
// schema or download source changed since it was written.
func openCache(cfg *config.Config, dir string) (*store.BoltStore, error) {
	if err := config.EnsureDataDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	st, err := store.NewBoltStore(config.CacheDBPath(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to open stopword cache: %w", err)
	}

	result, err := st.Prepare(cfg.Stopwords.NLTKURL)
	if err != nil {
		st.Close()
		return nil, err
	}
	if result.NeedsRebuild {
		GetLogger().Info("stopword cache cleared", zap.String("reason", result.Reason))
	}

	return st, nil
}

// newNLTKProvider returns the download provider, wrapped in the bolt cache
// when caching is enabled. The returned close function is never nil.
func newNLTKProvider(cfg *config.Config, dir string, progress io.Writer) (port.StopwordProvider, *stopwords.CachingProvider, func() error, error) {
	nltk := stopwords.NewNLTKProvider(cfg.Stopwords.NLTKURL,
		stopwords.WithProgress(progress),
		stopwords.WithLogger(GetLogger()))

	if !cfg.Stopwords.CacheEnabled {
		return nltk, nil, func() error { return nil }, nil
	}

	st, err := openCache(cfg, dir)
	if err != nil {
		return nil, nil, nil, err
	}
	caching := stopwords.NewCachingProvider(nltk, st, nltk.Source(), GetLogger())
	return caching, caching, st.Close, nil
}

// newStopwordLoader builds the loader described by the stopwords config section.
func newStopwordLoader(cfg *config.Config, dir string, progress io.Writer) (*usecase.StopwordLoader, func() error, error) {
	var base port.StopwordProvider = stopwords.NewEmbeddedProvider()
	closeFn := func() error { return nil }

	if cfg.Stopwords.Source == config.SourceNLTK {
		var err error
		base, _, closeFn, err = newNLTKProvider(cfg, dir, progress)
		if err != nil {
			return nil, nil, err
		}
	}

	sources := usecase.StopwordSources{
		Base:    base,
		Extra:   cfg.Stopwords.Extra,
		Exclude: cfg.Stopwords.Exclude,
	}
	if len(cfg.Stopwords.Files) > 0 {
		sources.Files = stopwords.NewFileProvider(dir, cfg.Stopwords.Files)
	}

	return usecase.NewStopwordLoader(sources, GetLogger()), closeFn, nil
}
