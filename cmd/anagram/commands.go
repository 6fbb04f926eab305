package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gophersatwork/anagram"
	"github.com/gophersatwork/anagram/internal/config"
	"github.com/spf13/cobra"
)

// cli holds the root command and the flags shared by every subcommand.
type cli struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	configPath string
	source     string
	cache      string
	force      bool
	logLevel   string
}

func newCLI(stdout, stderr io.Writer) *cli {
	c := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "anagram",
		Short:         "Look up anagrams in a word list",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Path to a YAML config file")
	flags.StringVarP(&c.source, "source", "s", "", "Path to the word list, one word per line")
	flags.StringVar(&c.cache, "cache", "", "Path to the cache file")
	flags.BoolVarP(&c.force, "force", "f", false, "Rebuild the index even if the cache is current")
	flags.StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	root.AddCommand(c.newLookupCmd())
	root.AddCommand(c.newRebuildCmd())
	root.AddCommand(c.newStatsCmd())

	c.root = root
	return c
}

// openIndex resolves configuration (file, environment, then flags) and opens the index.
func (c *cli) openIndex(cmd *cobra.Command, force bool) (*anagram.Index, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("source") {
		cfg.Source = c.source
	}
	if cmd.Flags().Changed("cache") {
		cfg.Cache = c.cache
	}
	if cmd.Flags().Changed("force") {
		cfg.ForceRebuild = c.force
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = c.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := newLogger(c.stderr, cfg.Logging.Level, cfg.Logging.Format)

	idx, err := anagram.Open(cfg.Source, cfg.Cache,
		anagram.WithLogger(logger),
		anagram.WithForceRebuild(cfg.ForceRebuild || force),
	)
	if err != nil {
		return nil, err
	}

	// A failed cache write is already logged at warn level by Open
	return idx, nil
}

func (c *cli) newLookupCmd() *cobra.Command {
	var sorted, asJSON bool

	cmd := &cobra.Command{
		Use:   "lookup WORD...",
		Short: "Print the anagram group of each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := c.openIndex(cmd, false)
			if err != nil {
				return err
			}

			results := make(map[string][]string, len(args))
			for _, word := range args {
				group := idx.Lookup(word)
				if sorted {
					slices.Sort(group)
				}
				results[word] = group
			}

			if asJSON {
				enc := json.NewEncoder(c.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			for _, word := range args {
				_, _ = fmt.Fprintf(c.stdout, "%s: %s\n", word, strings.Join(results[word], " "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&sorted, "sort", false, "Sort each group alphabetically")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as a JSON object")
	return cmd
}

func (c *cli) newRebuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild",
		Short: "Rebuild the index and rewrite the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idx, err := c.openIndex(cmd, true)
			if err != nil {
				return err
			}

			stats := idx.Stats()
			_, _ = fmt.Fprintf(c.stdout, "rebuilt %s (fingerprint %s, %d words, %d classes)\n",
				idx.CachePath(), idx.Fingerprint(), stats.Words, stats.Classes)
			return nil
		},
	}
}

func (c *cli) newStatsCmd() *cobra.Command {
	var minGroup int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print index statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idx, err := c.openIndex(cmd, false)
			if err != nil {
				return err
			}

			stats := idx.Stats()
			_, _ = fmt.Fprintf(c.stdout, "words:   %d\n", stats.Words)
			_, _ = fmt.Fprintf(c.stdout, "classes: %d\n", stats.Classes)
			_, _ = fmt.Fprintf(c.stdout, "largest: %d (%s)\n", stats.LargestSize, stats.LargestKey)

			if minGroup > 0 {
				for _, group := range idx.Classes(minGroup) {
					_, _ = fmt.Fprintln(c.stdout, strings.Join(group, " "))
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&minGroup, "groups", 0, "List every group with at least this many words")
	return cmd
}
