package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/VerbaLabs/doctrans"
	"github.com/VerbaLabs/doctrans/adapter"
	"github.com/VerbaLabs/doctrans/internal/config"
	"github.com/VerbaLabs/doctrans/provider"
	"github.com/VerbaLabs/doctrans/tm"
)

// contentTypeByExt maps file extensions to adapter content types.
var contentTypeByExt = map[string]string{
	".docx":     "docx",
	".xlf":      "xliff",
	".xliff":    "xliff",
	".html":     "html",
	".htm":      "html",
	".md":       "markdown",
	".markdown": "markdown",
}

// translateCmd creates the translate command.
func translateCmd() *cobra.Command {
	var (
		sourceLang string
		targetLang string
		output     string
		memoryDir  string
		redisURL   string
		parallel   int
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "translate <file>",
		Short: "Translate a structured document",
		Long: `Translate a structured document (DOCX, XLIFF, HTML, Markdown).

Text is extracted, batched, optionally enriched with exact matches from a TMX
translation memory, sent to the configured AI service, and written back into
the original document structure.

For XLIFF input the language pair defaults to the source-language and
target-language attributes of the <file> element.`,
		Example: `  doctrans translate manual.docx --source ru --target uk
  doctrans translate strings.xlf --memory corpus/
  doctrans translate index.html --source en --target de -o index_de.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			inputPath := args[0]
			content, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("reading file: %w", err)
			}

			contentType, ok := contentTypeByExt[strings.ToLower(filepath.Ext(inputPath))]
			if !ok {
				return fmt.Errorf("unsupported file extension %q", filepath.Ext(inputPath))
			}

			if contentType == "xliff" && (sourceLang == "" || targetLang == "") {
				src, trg := adapter.DetectLangs(content)
				if sourceLang == "" {
					sourceLang = src
				}
				if targetLang == "" {
					targetLang = trg
				}
			}
			if sourceLang == "" || targetLang == "" {
				return fmt.Errorf("--source and --target are required for this document")
			}

			memory, err := buildMemory(cmd, memoryDir, redisURL, cfg, quiet)
			if err != nil {
				return err
			}

			if cfg.APIKey == "" {
				cfg.APIKey = os.Getenv("OPENAI_API_KEY")
			}
			if cfg.APIKey == "" {
				return fmt.Errorf("API key required (DOCTRANS_API_KEY or OPENAI_API_KEY)")
			}

			var caller doctrans.ServiceCaller = provider.NewOpenAICaller(provider.OpenAIConfig{
				APIKey:  cfg.APIKey,
				Model:   cfg.Model,
				BaseURL: cfg.BaseURL,
				Timeout: cfg.RequestTimeout,
			})
			caller = doctrans.NewRetryableCaller(caller, doctrans.DefaultRetryConfig())
			if cfg.RequestsPerMinute > 0 {
				caller = doctrans.NewRateLimitedCaller(caller, doctrans.RateLimitConfig{
					RequestsPerMinute: cfg.RequestsPerMinute,
				})
			}

			rules := doctrans.DefaultRules()
			if cfg.RulesFile != "" {
				rules, err = doctrans.LoadRules(cfg.RulesFile)
				if err != nil {
					return err
				}
			}

			opts := []doctrans.Option{
				doctrans.WithAdapter(adapter.NewDOCXAdapter()),
				doctrans.WithAdapter(adapter.NewXLIFFAdapter()),
				doctrans.WithAdapter(adapter.NewHTMLAdapter()),
				doctrans.WithAdapter(adapter.NewMarkdownAdapter()),
				doctrans.WithMaxPerBatch(cfg.MaxPerBatch),
				doctrans.WithMaxTokens(cfg.MaxTokens),
				doctrans.WithRules(rules),
			}
			if memory != nil {
				opts = append(opts, doctrans.WithMemory(memory))
			}
			if parallel > 1 {
				opts = append(opts, doctrans.WithParallelism(parallel))
			}

			translator := doctrans.New(sourceLang, targetLang, caller, opts...)

			if !quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "Translating %s from %s to %s...\n",
					filepath.Base(inputPath), sourceLang, targetLang)
			}

			start := time.Now()
			result, err := translator.Translate(context.Background(), content, contentType)
			if err != nil {
				return fmt.Errorf("translation failed: %w", err)
			}
			elapsed := time.Since(start)

			outPath := output
			if outPath == "" {
				outPath = deriveOutputPath(inputPath)
			}
			if err := os.WriteFile(outPath, result.Content, 0o644); err != nil {
				return fmt.Errorf("writing output file: %w", err)
			}

			if !quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "\nDone in %v\n", elapsed.Round(time.Millisecond))
				fmt.Fprintf(cmd.ErrOrStderr(), "  Segments:  %d\n", result.TotalNodes)
				fmt.Fprintf(cmd.ErrOrStderr(), "  Batches:   %d\n", result.BatchCount)
				fmt.Fprintf(cmd.ErrOrStderr(), "  TM hints:  %d\n", result.HintCount)
				fmt.Fprintf(cmd.ErrOrStderr(), "  Output:    %s\n", outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceLang, "source", "", "Source language code (e.g., ru)")
	cmd.Flags().StringVar(&targetLang, "target", "", "Target language code (e.g., uk)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: <name>_translated<ext>)")
	cmd.Flags().StringVar(&memoryDir, "memory", "", "Directory with TMX corpus files")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL of a shared translation memory")
	cmd.Flags().IntVar(&parallel, "parallel", 1, "Translate up to N batches concurrently")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")

	return cmd
}

// buildMemory wires the translation memory: a Redis-backed index when a URL
// is given (loading the corpus into it if --memory is also set), an in-memory
// index loaded from --memory otherwise, or nil when neither is configured.
func buildMemory(cmd *cobra.Command, memoryDir, redisURL string, cfg *config.Config, quiet bool) (doctrans.Memory, error) {
	if redisURL == "" {
		redisURL = cfg.RedisURL
	}

	var idx tm.Index
	switch {
	case redisURL != "":
		ridx, err := tm.NewRedisIndex(tm.RedisConfig{URL: redisURL})
		if err != nil {
			return nil, fmt.Errorf("connecting to redis memory: %w", err)
		}
		idx = ridx
	case memoryDir != "":
		idx = tm.NewMemoryIndex()
	default:
		return nil, nil
	}

	if memoryDir != "" {
		summary, err := tm.LoadDir(idx, memoryDir)
		if err != nil {
			return nil, fmt.Errorf("loading translation memory: %w", err)
		}
		if !quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "Loaded %d translations for %d source segments\n",
				summary.Pairs, summary.Sources)
		}
	}
	return idx, nil
}

// deriveOutputPath converts an input path to the default translated output
// path. Example: "manual.docx" -> "manual_translated.docx"
func deriveOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "_translated" + ext
}
