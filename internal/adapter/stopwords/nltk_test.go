package stopwords

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func buildCorpus(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newCorpusServer(t *testing.T, body []byte, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		w.Header().Set("Content-Type", "application/zip")
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNLTKProvider_Download(t *testing.T) {
	corpus := buildCorpus(t, map[string]string{
		"stopwords/README":  "not a language",
		"stopwords/english": "i\nme\nmy\n",
		"stopwords/german":  "aber\nalle\n",
	})
	srv := newCorpusServer(t, corpus, nil)

	var progress bytes.Buffer
	p := NewNLTKProvider(srv.URL, WithProgress(&progress))

	set, err := p.Stopwords(context.Background(), "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Len() != 3 || !set.Contains("me") {
		t.Errorf("expected english words, got %v", set.Words())
	}
	if progress.Len() == 0 {
		t.Error("expected progress output")
	}

	set, err = p.Stopwords(context.Background(), "german")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !set.Contains("aber") {
		t.Errorf("expected german words, got %v", set.Words())
	}
}

func TestNLTKProvider_MissingLanguage(t *testing.T) {
	corpus := buildCorpus(t, map[string]string{"stopwords/english": "the\n"})
	srv := newCorpusServer(t, corpus, nil)

	_, err := NewNLTKProvider(srv.URL).Stopwords(context.Background(), "klingon")
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
	}
}

func TestNLTKProvider_RejectsPathLanguage(t *testing.T) {
	var hits int32
	srv := newCorpusServer(t, nil, &hits)

	_, err := NewNLTKProvider(srv.URL).Stopwords(context.Background(), "../english")
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Error("invalid language should not trigger a download")
	}
}

func TestNLTKProvider_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewNLTKProvider(srv.URL).Stopwords(context.Background(), "english")
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("expected status in error, got %v", err)
	}
}

func TestNLTKProvider_NotAZip(t *testing.T) {
	srv := newCorpusServer(t, []byte("<html>captive portal</html>"), nil)

	_, err := NewNLTKProvider(srv.URL).Stopwords(context.Background(), "english")
	if err == nil || !strings.Contains(err.Error(), "corpus") {
		t.Errorf("expected corpus error, got %v", err)
	}
}

func TestNewNLTKProvider_DefaultURL(t *testing.T) {
	if got := NewNLTKProvider("").Source(); got != DefaultNLTKURL {
		t.Errorf("expected default URL, got %s", got)
	}
}
