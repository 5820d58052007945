package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"friendlytext/internal/adapter/cache"
	"friendlytext/internal/domain"
	"friendlytext/internal/usecase"
	"github.com/spf13/cobra"
)

var (
	cleanInput  string
	cleanOutput string
	cleanSteps  []string
	cleanJSON   bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [text...]",
	Short: "Clean text with the configured steps",
	Long: `Clean text by applying the configured steps in order. Text is taken from the
arguments, from --input, or from stdin.

Available steps: urls, hashtags, punctuation, digits, lowercase, stopwords.

Examples:
  friendlytext clean "Check https://go.dev for #golang news"
  friendlytext clean -i notes.txt -o notes.clean.txt
  cat notes.txt | friendlytext clean --steps lowercase,stopwords --json`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().StringVarP(&cleanInput, "input", "i", "", "input file (\"-\" for stdin)")
	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "", "output file (default: stdout)")
	cleanCmd.Flags().StringSliceVar(&cleanSteps, "steps", nil, "comma-separated steps (default from config)")
	cleanCmd.Flags().BoolVar(&cleanJSON, "json", false, "output input, output and steps as JSON")
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	log := GetLogger()

	text, err := readCleanInput(cmd, args)
	if err != nil {
		return err
	}

	steps := cfg.Clean.Steps
	if len(cleanSteps) > 0 {
		steps = cleanSteps
	}

	// Stopwords are resolved once, before any text is cleaned.
	uc, err := func() (*usecase.CleanUseCase, error) {
		patterns := cache.NewPatternCache(cfg.PatternCache.MaxSize)
		if !containsStep(steps, usecase.StepStopwords) {
			return usecase.NewCleanUseCase(steps, domain.StopwordSet{}, patterns, log)
		}

		loader, closeFn, err := newStopwordLoader(cfg, GetRootDir(), cmd.ErrOrStderr())
		if err != nil {
			return nil, err
		}
		defer closeFn()

		set, err := loader.Load(cmd.Context(), cfg.Stopwords.Language)
		if err != nil {
			return nil, err
		}
		return usecase.NewCleanUseCase(steps, set, patterns, log)
	}()
	if err != nil {
		return err
	}

	result, err := uc.Clean(text)
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}

	var output []byte
	if cleanJSON {
		output, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = append(output, '\n')
	} else {
		output = []byte(result.Output)
		if !strings.HasSuffix(result.Output, "\n") {
			output = append(output, '\n')
		}
	}

	if cleanOutput != "" {
		if err := os.WriteFile(cleanOutput, output, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Cleaned text written to: %s\n", cleanOutput)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(output)
	return err
}

func readCleanInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		if cleanInput != "" {
			return "", fmt.Errorf("pass text as arguments or --input, not both")
		}
		return strings.Join(args, " "), nil
	}

	if cleanInput != "" && cleanInput != "-" {
		data, err := os.ReadFile(cleanInput)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func containsStep(steps []string, name string) bool {
	for _, s := range steps {
		if s == name {
			return true
		}
	}
	return false
}
