package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"excuses/internal/cache"
	"excuses/internal/config"
	"excuses/internal/corpus"
	"excuses/internal/logging"
	"excuses/internal/provider"
	"excuses/internal/store"
	"excuses/internal/together"
	"excuses/internal/validation"
)

type options struct {
	fresh      bool
	offline    bool
	verbose    bool
	corpusFile string
	logLevel   string
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "excuse [situation...]",
		Short: "excuse prints a believable excuse for a situation",
		Long: `Describe your situation and get an excuse back. A remote language model is
used when TOGETHER_API_KEY or TOGETHER_PROXY_URL is set; otherwise, or when it
fails, the excuse comes from the built-in corpus.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(cfg.LogFormat, logging.ParseLevel(opts.logLevel))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, opts, strings.Join(args, " "))
		},
	}

	cmd.PersistentFlags().StringVar(&opts.corpusFile, "corpus", cfg.CorpusFile, "YAML corpus file replacing the built-in excuses")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.fresh, "fresh", false, "skip the cached excuse for this situation")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "never call the remote model")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print where the excuse came from")

	cmd.AddCommand(newCategoriesCmd(opts))
	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config, opts *options, situation string) error {
	if valid, msg := validation.ValidateSituation(situation); !valid {
		return fmt.Errorf("%s", msg)
	}

	c, err := corpus.Load(opts.corpusFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	backend, err := store.Open(ctx, cfg)
	if err != nil {
		return err
	}
	if backend != nil {
		defer backend.Close()
	}

	if opts.offline {
		cfg.APIRestricted = true
	}
	var generator provider.Generator
	client, ok, err := together.FromConfig(cfg)
	if err != nil {
		return err
	}
	if ok {
		generator = client
	}

	out := cmd.OutOrStdout()
	p := provider.New(provider.Options{
		Cache:     cache.New(cfg.CacheCapacity, cache.WithStore(backend), cache.WithStoreKey(cfg.CacheStoreKey)),
		Generator: generator,
		Corpus:    c,
		Notifier: provider.NotifierFunc(func(level, message string) {
			fmt.Fprintln(cmd.ErrOrStderr(), message)
		}),
		Deployment: provider.DeploymentContext{
			Platform:   cfg.DeploymentPlatform,
			Restricted: cfg.Mode() == config.ModeRestricted,
		},
	})

	res := p.Produce(ctx, situation, provider.Request{BypassCache: opts.fresh})
	fmt.Fprintln(out, res.Text)
	if opts.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "source: %s\n", res.Source)
		if res.Classification.Kind != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "classification: %s\n", res.Classification)
		}
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
