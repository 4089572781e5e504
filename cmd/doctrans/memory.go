package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VerbaLabs/doctrans/internal/config"
	"github.com/VerbaLabs/doctrans/tm"
)

// memoryCmd creates the memory command group.
func memoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Manage the translation memory",
	}
	cmd.AddCommand(memoryLoadCmd())
	return cmd
}

// memoryLoadCmd creates the memory load command.
func memoryLoadCmd() *cobra.Command {
	var redisURL string

	cmd := &cobra.Command{
		Use:   "load <dir>",
		Short: "Load a TMX corpus directory",
		Long: `Load all TMX files under a directory into the translation memory.

With --redis the corpus is written to a shared Redis-backed memory that
translate runs can use across processes; the swap is atomic, so concurrent
lookups see either the old or the new corpus in full. Without --redis the
corpus is parsed into a throwaway in-memory index, which validates the files
and reports what would be indexed.`,
		Example: `  doctrans memory load corpus/
  doctrans memory load corpus/ --redis redis://localhost:6379`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if redisURL == "" {
				redisURL = cfg.RedisURL
			}

			var idx tm.Index
			if redisURL != "" {
				ridx, err := tm.NewRedisIndex(tm.RedisConfig{URL: redisURL})
				if err != nil {
					return fmt.Errorf("connecting to redis memory: %w", err)
				}
				defer ridx.Close()
				idx = ridx
			} else {
				idx = tm.NewMemoryIndex()
			}

			summary, err := tm.LoadDir(idx, args[0])
			if err != nil {
				return fmt.Errorf("loading translation memory: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d translations for %d source segments\n",
				summary.Pairs, summary.Sources)
			return nil
		},
	}

	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL of a shared translation memory")
	return cmd
}
