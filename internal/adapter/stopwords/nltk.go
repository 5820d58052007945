package stopwords

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"friendlytext/internal/domain"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// DefaultNLTKURL is the NLTK data package holding the stopwords corpus.
const DefaultNLTKURL = "https://raw.githubusercontent.com/nltk/nltk_data/gh-pages/packages/corpora/stopwords.zip"

// maxCorpusSize bounds the download; the real archive is well under 100KB.
const maxCorpusSize = 16 << 20

// NLTKProvider downloads the NLTK stopwords corpus and extracts one language.
type NLTKProvider struct {
	url      string
	client   *http.Client
	progress io.Writer
	logger   *zap.Logger
}

// NLTKOption configures an NLTKProvider.
type NLTKOption func(*NLTKProvider)

// WithHTTPClient replaces the default client (60s timeout).
func WithHTTPClient(client *http.Client) NLTKOption {
	return func(p *NLTKProvider) { p.client = client }
}

// WithProgress renders a download progress bar to w.
func WithProgress(w io.Writer) NLTKOption {
	return func(p *NLTKProvider) { p.progress = w }
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) NLTKOption {
	return func(p *NLTKProvider) { p.logger = logger }
}

func NewNLTKProvider(url string, opts ...NLTKOption) *NLTKProvider {
	if url == "" {
		url = DefaultNLTKURL
	}
	p := &NLTKProvider{
		url: url,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Source returns the download URL.
func (p *NLTKProvider) Source() string {
	return p.url
}

func (p *NLTKProvider) Stopwords(ctx context.Context, language string) (domain.StopwordSet, error) {
	lang := NormalizeLanguage(language)
	if strings.ContainsAny(lang, `/\`) || strings.Contains(lang, "..") {
		return domain.StopwordSet{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}

	archive, err := p.download(ctx)
	if err != nil {
		return domain.StopwordSet{}, err
	}

	words, err := extractLanguage(archive, lang)
	if err != nil {
		return domain.StopwordSet{}, err
	}

	p.logger.Info("downloaded stopwords",
		zap.String("language", lang),
		zap.Int("words", len(words)),
		zap.String("url", p.url))

	return domain.NewStopwordSet(words...), nil
}

func (p *NLTKProvider) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	p.logger.Debug("fetching stopwords corpus", zap.String("url", p.url))

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download stopwords: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download stopwords: %s returned %s", p.url, resp.Status)
	}

	var buf bytes.Buffer
	var dst io.Writer = &buf
	if p.progress != nil {
		bar := progressbar.NewOptions64(resp.ContentLength,
			progressbar.OptionSetWriter(p.progress),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("[cyan]Downloading stopwords[reset]"),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(p.progress)
			}),
		)
		defer bar.Finish()
		dst = io.MultiWriter(&buf, bar)
	}

	n, err := io.Copy(dst, io.LimitReader(resp.Body, maxCorpusSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read stopwords corpus: %w", err)
	}
	if n > maxCorpusSize {
		return nil, fmt.Errorf("stopwords corpus exceeds %d bytes", maxCorpusSize)
	}

	return buf.Bytes(), nil
}

// extractLanguage reads stopwords/<lang> from the corpus archive.
func extractLanguage(archive []byte, lang string) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("failed to open stopwords corpus: %w", err)
	}

	name := "stopwords/" + lang
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}
		defer rc.Close()
		return ParseWordList(rc)
	}

	return nil, fmt.Errorf("%w: %q not in corpus", ErrUnsupportedLanguage, lang)
}
