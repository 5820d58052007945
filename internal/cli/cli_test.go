package cli

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"friendlytext/config"
	"friendlytext/internal/domain"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfgFile, rootDir, logLevel = "", "", ""
	cleanInput, cleanOutput, cleanSteps, cleanJSON = "", "", nil, false
	listCount, listLanguage, fetchLanguage, initForce = false, "", "", false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "friendlytext.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestClean_DefaultSteps(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runCLI(t, "", "clean", "--dir", dir, "this list has many stopwords like that.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := " list  many stopwords like  \n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestClean_StdinJSON(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runCLI(t, "Hello WORLD", "clean", "--dir", dir, "--steps", "lowercase", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result domain.CleanResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if result.Output != "hello world" {
		t.Errorf("expected lowercased output, got %q", result.Output)
	}
	if len(result.Steps) != 1 || result.Steps[0] != "lowercase" {
		t.Errorf("expected only lowercase step, got %v", result.Steps)
	}
}

func TestClean_ConfigExtraAndExclude(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
clean:
  steps: [stopwords]
stopwords:
  extra: [lorem]
  exclude: [not]
`)

	out, _, err := runCLI(t, "", "clean", "--dir", dir, "lorem is not ipsum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// lorem and is removed, not kept
	want := "  not ipsum\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestClean_FileInputOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	outPath := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(in, []byte("Read #this at http://x.io/a 2 times\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := runCLI(t, "", "clean", "--dir", dir, "-i", in, "-o", outPath, "--steps", "urls,hashtags")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, outPath) {
		t.Errorf("expected output path reported, got %q", stderr)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Read   at  2 times\n" {
		t.Errorf("unexpected file content %q", data)
	}
}

func TestClean_UnknownStep(t *testing.T) {
	_, _, err := runCLI(t, "", "clean", "--dir", t.TempDir(), "--steps", "stem", "text")
	if err == nil || !strings.Contains(err.Error(), "unknown cleaning step") {
		t.Errorf("expected unknown step error, got %v", err)
	}
}

func TestStopwordsList_Count(t *testing.T) {
	out, _, err := runCLI(t, "", "stopwords", "list", "--dir", t.TempDir(), "--count")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "179\n" {
		t.Errorf("expected 179, got %q", out)
	}
}

func TestStopwordsList_Words(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "stopwords:\n  extra: [zzz]\n")

	out, _, err := runCLI(t, "", "stopwords", "list", "--dir", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 180 {
		t.Fatalf("expected 180 words, got %d", len(lines))
	}
	if lines[0] != "a" || lines[len(lines)-1] != "zzz" {
		t.Errorf("expected sorted output, got first=%q last=%q", lines[0], lines[len(lines)-1])
	}
}

func newNLTKServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"stopwords/english": "alpha\nbeta\n",
		"stopwords/german":  "aber\n",
	} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		fmt.Fprint(w, content)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	body := buf.Bytes()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestStopwords_NLTKSourceIsCached(t *testing.T) {
	var hits int32
	srv := newNLTKServer(t, &hits)

	dir := t.TempDir()
	writeConfig(t, dir, fmt.Sprintf("stopwords:\n  source: nltk\n  nltk_url: %s\n", srv.URL))

	for i := 0; i < 2; i++ {
		out, _, err := runCLI(t, "", "clean", "--dir", dir, "--steps", "stopwords", "alpha omega beta")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != " omega  \n" {
			t.Errorf("got %q", out)
		}
	}

	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("expected a single download, got %d", got)
	}
	if _, err := os.Stat(config.CacheDBPath(dir)); err != nil {
		t.Errorf("expected cache database: %v", err)
	}
}

func TestStopwordsFetch(t *testing.T) {
	var hits int32
	srv := newNLTKServer(t, &hits)

	dir := t.TempDir()
	writeConfig(t, dir, fmt.Sprintf("stopwords:\n  nltk_url: %s\n", srv.URL))

	out, _, err := runCLI(t, "", "stopwords", "fetch", "--dir", dir, "--language", "de")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Cached 1 german stopwords\n" {
		t.Errorf("got %q", out)
	}

	// a second fetch always downloads again
	if _, _, err := runCLI(t, "", "stopwords", "fetch", "--dir", dir, "--language", "de"); err != nil {
		t.Fatal(err)
	}
	if got := atomic.LoadInt32(&hits); got != 2 {
		t.Errorf("expected 2 downloads, got %d", got)
	}
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := runCLI(t, "", "config", "init", "--dir", dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := config.LoadFromDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Stopwords.Source != config.SourceEmbedded {
		t.Errorf("expected default source in written config, got %q", cfg.Stopwords.Source)
	}

	if _, _, err := runCLI(t, "", "config", "init", "--dir", dir); err == nil {
		t.Error("expected error when config exists")
	}
	if _, _, err := runCLI(t, "", "config", "init", "--dir", dir, "--force"); err != nil {
		t.Errorf("--force should overwrite: %v", err)
	}
}
