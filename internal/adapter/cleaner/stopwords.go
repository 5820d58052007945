package cleaner

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"friendlytext/internal/domain"
	"github.com/dlclark/regexp2"
)

// ErrPatternConstruction is matched by every error returned while building a
// stopword pattern.
var ErrPatternConstruction = errors.New("stopword pattern construction failed")

// PatternError reports the stopword (if any) that prevented the pattern from
// being assembled.
type PatternError struct {
	Word string
	Err  error
}

func (e *PatternError) Error() string {
	if e.Word == "" && e.Err != nil {
		return fmt.Sprintf("%s: %v", ErrPatternConstruction, e.Err)
	}
	return fmt.Sprintf("%s: stopword %q: %v", ErrPatternConstruction, e.Word, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

func (e *PatternError) Is(target error) bool {
	return target == ErrPatternConstruction
}

// StopwordRemover removes whole-word stopwords using a single compiled pattern.
// It holds no mutable state and is safe for concurrent use.
type StopwordRemover struct {
	pattern *regexp2.Regexp
	size    int
}

// NewStopwordRemover compiles a remover for the given set. An empty set yields
// a remover that returns its input unchanged.
func NewStopwordRemover(stopwords domain.StopwordSet) (*StopwordRemover, error) {
	if stopwords.Len() == 0 {
		return &StopwordRemover{}, nil
	}

	expr, err := buildPattern(stopwords)
	if err != nil {
		return nil, err
	}

	// .NET-style matching keeps \b and \s Unicode-aware.
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, &PatternError{Err: err}
	}

	return &StopwordRemover{pattern: re, size: stopwords.Len()}, nil
}

// Remove replaces every whole-word stopword, together with the whitespace run
// that follows it, with a single space. Leading and trailing spaces produced by
// a removal are kept.
func (r *StopwordRemover) Remove(text string) (string, error) {
	if r.pattern == nil || text == "" {
		return text, nil
	}
	out, err := r.pattern.Replace(text, " ", -1, -1)
	if err != nil {
		return "", fmt.Errorf("remove stopwords: %w", err)
	}
	return out, nil
}

// Size returns the number of stopwords the remover matches.
func (r *StopwordRemover) Size() int {
	return r.size
}

// RemoveStopwords compiles a pattern for stopwords and applies it once.
// Callers applying the same set repeatedly should keep a StopwordRemover.
func RemoveStopwords(text string, stopwords domain.StopwordSet) (string, error) {
	r, err := NewStopwordRemover(stopwords)
	if err != nil {
		return "", err
	}
	return r.Remove(text)
}

// buildPattern returns `\b(?:w1|w2|...)\b\s*` with every word escaped.
// Longer words come first so that a word sharing a prefix with another
// (don't / don) never loses to it, whatever order the set enumerates in.
func buildPattern(stopwords domain.StopwordSet) (string, error) {
	words := stopwords.Words()
	sort.SliceStable(words, func(i, j int) bool {
		return len(words[i]) > len(words[j])
	})

	var b strings.Builder
	b.WriteString(`\b(?:`)
	for i, w := range words {
		if w == "" {
			return "", &PatternError{Word: w, Err: errors.New("empty stopword matches at every word boundary")}
		}
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(regexp2.Escape(w))
	}
	b.WriteString(`)\b\s*`)
	return b.String(), nil
}
