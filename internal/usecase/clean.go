package usecase

import (
	"errors"
	"fmt"
	"sort"

	"friendlytext/internal/adapter/cache"
	"friendlytext/internal/adapter/cleaner"
	"friendlytext/internal/domain"
	"friendlytext/internal/port"
	"go.uber.org/zap"
)

// ErrUnknownStep is returned for a step name with no matching transformation.
var ErrUnknownStep = errors.New("unknown cleaning step")

// StepStopwords is the name of the stopword removal step.
const StepStopwords = "stopwords"

var fixedSteps = map[string]func(string) string{
	"urls":        cleaner.RemoveURLs,
	"hashtags":    cleaner.RemoveHashtags,
	"punctuation": cleaner.RemovePunctuation,
	"digits":      cleaner.ReplaceDigits,
	"lowercase":   cleaner.Lowercase,
}

// AvailableSteps returns every known step name, sorted.
func AvailableSteps() []string {
	names := make([]string, 0, len(fixedSteps)+1)
	for name := range fixedSteps {
		names = append(names, name)
	}
	names = append(names, StepStopwords)
	sort.Strings(names)
	return names
}

type funcStep struct {
	name string
	fn   func(string) string
}

func (s funcStep) Name() string { return s.name }

func (s funcStep) Apply(text string) (string, error) { return s.fn(text), nil }

type stopwordStep struct {
	remover *cleaner.StopwordRemover
}

func (s stopwordStep) Name() string { return StepStopwords }

func (s stopwordStep) Apply(text string) (string, error) { return s.remover.Remove(text) }

// CleanUseCase applies an ordered list of cleaning steps to a text.
type CleanUseCase struct {
	steps     []port.Step
	stopwords domain.StopwordSet
	patterns  *cache.PatternCache
	logger    *zap.Logger
}

// NewCleanUseCase creates a new clean use case. The stopword pattern is
// compiled here, once, when the steps include stopword removal.
func NewCleanUseCase(
	stepNames []string,
	stopwords domain.StopwordSet,
	patterns *cache.PatternCache,
	logger *zap.Logger,
) (*CleanUseCase, error) {
	if patterns == nil {
		patterns = cache.NewPatternCache(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	steps := make([]port.Step, 0, len(stepNames))
	for _, name := range stepNames {
		if fn, ok := fixedSteps[name]; ok {
			steps = append(steps, funcStep{name: name, fn: fn})
			continue
		}
		if name != StepStopwords {
			return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownStep, name, AvailableSteps())
		}
		remover, err := patterns.Remover(stopwords)
		if err != nil {
			return nil, err
		}
		steps = append(steps, stopwordStep{remover: remover})
	}

	return &CleanUseCase{
		steps:     steps,
		stopwords: stopwords,
		patterns:  patterns,
		logger:    logger,
	}, nil
}

// Steps returns the configured step names in order.
func (u *CleanUseCase) Steps() []string {
	names := make([]string, len(u.steps))
	for i, s := range u.steps {
		names[i] = s.Name()
	}
	return names
}

// Stopwords returns the set used by the stopword step.
func (u *CleanUseCase) Stopwords() domain.StopwordSet {
	return u.stopwords
}

// Clean runs text through every step in order.
func (u *CleanUseCase) Clean(text string) (domain.CleanResult, error) {
	out := text
	for _, step := range u.steps {
		next, err := step.Apply(out)
		if err != nil {
			return domain.CleanResult{}, fmt.Errorf("step %s: %w", step.Name(), err)
		}
		u.logger.Debug("applied step",
			zap.String("step", step.Name()),
			zap.Int("in_len", len(out)),
			zap.Int("out_len", len(next)))
		out = next
	}

	return domain.CleanResult{
		Input:  text,
		Output: out,
		Steps:  u.Steps(),
	}, nil
}

// RemoveStopwords removes an ad-hoc stopword set, reusing compiled patterns
// for sets seen before.
func (u *CleanUseCase) RemoveStopwords(text string, stopwords domain.StopwordSet) (string, error) {
	remover, err := u.patterns.Remover(stopwords)
	if err != nil {
		return "", err
	}
	return remover.Remove(text)
}
