package cleaner

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	digitTokenPattern = regexp.MustCompile(`^\d+\s|\s\d+\s|\s\d+$`)
	urlPattern        = regexp.MustCompile(`https?://\S+`)
	hashtagPattern    = regexp.MustCompile(`#[A-Za-z0-9_]+`)
)

// asciiPunctuation is the ASCII punctuation set: !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// RemovePunctuation deletes every ASCII punctuation character.
func RemovePunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 && strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, s)
}

// ReplaceDigits replaces each whitespace-delimited run of digits, along with
// its delimiting whitespace, by a single space.
//
// A single pass cannot see adjacent digit tokens ("1 2") because the separator
// is consumed by the first match, so the pattern is reapplied until nothing
// changes. Every replacement shortens the string, so this terminates.
func ReplaceDigits(s string) string {
	for {
		out := digitTokenPattern.ReplaceAllString(s, " ")
		if out == s {
			return out
		}
		s = out
	}
}

// RemoveURLs deletes http:// and https:// URLs up to the next whitespace.
func RemoveURLs(s string) string {
	return urlPattern.ReplaceAllString(s, "")
}

// RemoveHashtags replaces every #tag with a single space.
func RemoveHashtags(s string) string {
	return hashtagPattern.ReplaceAllString(s, " ")
}

// Lowercase applies full Unicode lowercasing.
func Lowercase(s string) string {
	// Casers carry state and are not safe to share between goroutines.
	return cases.Lower(language.Und).String(s)
}
