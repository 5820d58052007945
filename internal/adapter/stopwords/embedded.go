package stopwords

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"friendlytext/internal/domain"
)

//go:embed english.txt
var englishList string

// EmbeddedProvider serves the English stopword list compiled into the binary.
// It never touches the network or the filesystem.
type EmbeddedProvider struct{}

func NewEmbeddedProvider() *EmbeddedProvider {
	return &EmbeddedProvider{}
}

func (p *EmbeddedProvider) Stopwords(ctx context.Context, language string) (domain.StopwordSet, error) {
	if err := ctx.Err(); err != nil {
		return domain.StopwordSet{}, err
	}
	if lang := NormalizeLanguage(language); lang != DefaultLanguage {
		return domain.StopwordSet{}, fmt.Errorf("%w: %q (embedded list is English only)", ErrUnsupportedLanguage, language)
	}

	words, err := ParseWordList(strings.NewReader(englishList))
	if err != nil {
		return domain.StopwordSet{}, err
	}
	return domain.NewStopwordSet(words...), nil
}
