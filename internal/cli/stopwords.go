package cli

import (
	"fmt"

	"friendlytext/internal/adapter/stopwords"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	listCount     bool
	listLanguage  string
	fetchLanguage string
)

var stopwordsCmd = &cobra.Command{
	Use:   "stopwords",
	Short: "Inspect and fetch stopword lists",
}

var stopwordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the resolved stopword set",
	Long: `Print the stopword set the clean command would use: the configured source list
plus custom word-list files and extra words, minus excluded words. One word per
line, sorted.

Examples:
  friendlytext stopwords list
  friendlytext stopwords list --count`,
	Args: cobra.NoArgs,
	RunE: runStopwordsList,
}

var stopwordsFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a stopword list from the NLTK corpus into the cache",
	Long: `Download the NLTK stopwords corpus and store one language in the local cache
(.friendlytext/stopwords.db), replacing any cached copy.

Examples:
  friendlytext stopwords fetch
  friendlytext stopwords fetch --language german`,
	Args: cobra.NoArgs,
	RunE: runStopwordsFetch,
}

func init() {
	rootCmd.AddCommand(stopwordsCmd)
	stopwordsCmd.AddCommand(stopwordsListCmd)
	stopwordsCmd.AddCommand(stopwordsFetchCmd)

	stopwordsListCmd.Flags().BoolVar(&listCount, "count", false, "print only the number of stopwords")
	stopwordsListCmd.Flags().StringVarP(&listLanguage, "language", "l", "", "language (default from config)")
	stopwordsFetchCmd.Flags().StringVarP(&fetchLanguage, "language", "l", "", "language (default from config)")
}

func runStopwordsList(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	language := cfg.Stopwords.Language
	if listLanguage != "" {
		language = listLanguage
	}

	loader, closeFn, err := newStopwordLoader(cfg, GetRootDir(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeFn()

	set, err := loader.Load(cmd.Context(), language)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if listCount {
		fmt.Fprintln(out, set.Len())
		return nil
	}
	for _, w := range set.Words() {
		fmt.Fprintln(out, w)
	}
	return nil
}

func runStopwordsFetch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	language := cfg.Stopwords.Language
	if fetchLanguage != "" {
		language = fetchLanguage
	}

	if !cfg.Stopwords.CacheEnabled {
		return fmt.Errorf("stopword cache is disabled (stopwords.cache_enabled: false)")
	}

	_, caching, closeFn, err := newNLTKProvider(cfg, GetRootDir(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeFn()

	set, err := caching.Refresh(cmd.Context(), language)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	GetLogger().Info("cached stopwords", zap.String("language", stopwords.NormalizeLanguage(language)), zap.Int("words", set.Len()))
	fmt.Fprintf(cmd.OutOrStdout(), "Cached %d %s stopwords\n", set.Len(), stopwords.NormalizeLanguage(language))
	return nil
}
