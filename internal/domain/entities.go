package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// StopwordSet is an immutable set of stopwords. The zero value is an empty set.
// Set operations return new sets and never modify the receiver.
type StopwordSet struct {
	words map[string]struct{}
}

// NewStopwordSet builds a set from the given words. Duplicates collapse.
func NewStopwordSet(words ...string) StopwordSet {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return StopwordSet{words: m}
}

// Contains reports whether word is a member (exact case).
func (s StopwordSet) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of members.
func (s StopwordSet) Len() int {
	return len(s.words)
}

// Words returns the members sorted lexicographically.
func (s StopwordSet) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Union returns a set holding the members of both sets.
func (s StopwordSet) Union(other StopwordSet) StopwordSet {
	m := make(map[string]struct{}, len(s.words)+len(other.words))
	for w := range s.words {
		m[w] = struct{}{}
	}
	for w := range other.words {
		m[w] = struct{}{}
	}
	return StopwordSet{words: m}
}

// Without returns a copy of the set with the given words removed.
func (s StopwordSet) Without(words ...string) StopwordSet {
	m := make(map[string]struct{}, len(s.words))
	for w := range s.words {
		m[w] = struct{}{}
	}
	for _, w := range words {
		delete(m, w)
	}
	return StopwordSet{words: m}
}

// Fingerprint returns a stable hash of the sorted members. Equal sets share a
// fingerprint regardless of how they were built.
func (s StopwordSet) Fingerprint() string {
	hash := sha256.Sum256([]byte(strings.Join(s.Words(), "\x00")))
	return hex.EncodeToString(hash[:16])
}

// CleanResult is the outcome of running a text through the cleaning steps.
type CleanResult struct {
	Input  string   `json:"input"`
	Output string   `json:"output"`
	Steps  []string `json:"steps"`
}
