package stopwords

import (
	"context"
	"errors"
	"testing"
)

func TestEmbeddedProvider_English(t *testing.T) {
	p := NewEmbeddedProvider()

	for _, lang := range []string{"english", "English", "en", ""} {
		set, err := p.Stopwords(context.Background(), lang)
		if err != nil {
			t.Fatalf("Stopwords(%q): unexpected error: %v", lang, err)
		}
		if set.Len() != 179 {
			t.Errorf("Stopwords(%q): expected 179 words, got %d", lang, set.Len())
		}
		for _, w := range []string{"the", "don't", "should've", "i", "wouldn't"} {
			if !set.Contains(w) {
				t.Errorf("expected embedded list to contain %q", w)
			}
		}
	}
}

func TestEmbeddedProvider_Unsupported(t *testing.T) {
	p := NewEmbeddedProvider()

	_, err := p.Stopwords(context.Background(), "german")
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
	}
}

func TestEmbeddedProvider_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewEmbeddedProvider().Stopwords(ctx, "english"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
