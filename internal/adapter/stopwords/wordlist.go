package stopwords

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnsupportedLanguage is returned when a provider has no list for a language.
var ErrUnsupportedLanguage = errors.New("unsupported stopword language")

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "english"

var languageAliases = map[string]string{
	"":   DefaultLanguage,
	"en": DefaultLanguage,
	"de": "german",
	"es": "spanish",
	"fr": "french",
	"it": "italian",
	"nl": "dutch",
	"pt": "portuguese",
	"ru": "russian",
}

// NormalizeLanguage lowercases a language name and expands two-letter codes
// to the corpus file names NLTK uses.
func NormalizeLanguage(language string) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	if full, ok := languageAliases[lang]; ok {
		return full
	}
	return lang
}

// ParseWordList reads one word per line. Surrounding whitespace is trimmed,
// blank lines and lines starting with '#' are skipped.
func ParseWordList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}
