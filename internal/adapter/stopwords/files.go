package stopwords

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"friendlytext/internal/domain"
	"github.com/bmatcuk/doublestar/v4"
)

// FileProvider loads custom stopwords from word-list files matched by glob
// patterns. Relative patterns resolve against root; ** matches any depth.
type FileProvider struct {
	root     string
	patterns []string
}

func NewFileProvider(root string, patterns []string) *FileProvider {
	if root == "" {
		root = "."
	}
	return &FileProvider{
		root:     root,
		patterns: patterns,
	}
}

// Files returns the matched paths, sorted and deduplicated.
func (p *FileProvider) Files() ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	for _, pattern := range p.patterns {
		base, rest := p.split(pattern)
		matches, err := doublestar.Glob(os.DirFS(base), rest)
		if err != nil {
			return nil, fmt.Errorf("invalid stopword file pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			path := filepath.Join(base, filepath.FromSlash(m))
			if _, ok := seen[path]; ok {
				continue
			}
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	sort.Strings(files)
	return files, nil
}

// Load reads every matched file into one set. No patterns yields an empty set.
func (p *FileProvider) Load(ctx context.Context) (domain.StopwordSet, error) {
	files, err := p.Files()
	if err != nil {
		return domain.StopwordSet{}, err
	}

	var words []string
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return domain.StopwordSet{}, err
		}
		fileWords, err := readWordFile(path)
		if err != nil {
			return domain.StopwordSet{}, err
		}
		words = append(words, fileWords...)
	}

	return domain.NewStopwordSet(words...), nil
}

// Stopwords ignores the language: custom lists are language-agnostic.
func (p *FileProvider) Stopwords(ctx context.Context, _ string) (domain.StopwordSet, error) {
	return p.Load(ctx)
}

func (p *FileProvider) split(pattern string) (string, string) {
	if filepath.IsAbs(pattern) {
		base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))
		return filepath.FromSlash(base), rest
	}
	return p.root, filepath.ToSlash(pattern)
}

func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stopword file: %w", err)
	}
	defer f.Close()

	words, err := ParseWordList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}
