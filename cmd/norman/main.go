// Command norman normalizes AMR graphs in PENMAN notation.
//
//	norman [flags] INPUT            decode, rewrite and re-encode a corpus
//	norman stats FILE -r RE -c CO   corpus statistics before/after rewrites
//	norman align L R L-OUT R-OUT    keep graphs whose "# ::id" occurs in both
//	norman misalign A B             list parallel graphs with different tops
//
// INPUT may be "-" for standard input. Malformed graphs are skipped and
// counted; a malformed mapping table is a fatal error.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/norman/pipeline"
)

// app carries state shared by all commands of one invocation.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	cfg := pipeline.DefaultConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:   "norman [flags] INPUT",
		Short: "Normalize AMR graphs in PENMAN notation",
		Long: `norman decodes a corpus of AMR graphs, skipping malformed ones, and
writes it back after optional rewrites: role canonicalization, reification
of relations into nodes, dereification of nodes into relations and typing
of every node.

Tables are tab-separated files with the columns
relation, concept, source role, target role. Pass "builtin" to use the
embedded AMR table.`,
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: a.initLogger,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
		RunE: func(cmd *cobra.Command, args []string) error {
			merged, err := mergeConfig(cmd, cfg, configPath)
			if err != nil {
				return err
			}
			return a.runNormalize(cmd, merged, args[0])
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML config file; flags given explicitly override it")
	f.BoolVar(&cfg.CanonicalRoles, "canonical-roles", cfg.CanonicalRoles, "Canonicalize :mod-of/:domain-of and similar roles")
	f.StringVarP(&cfg.Reify, "reify", "r", cfg.Reify, "Reify relations to nodes using mapping in `FILE`")
	f.StringVarP(&cfg.Collapse, "collapse", "c", cfg.Collapse, "Collapse nodes to relations using mapping in `FILE`")
	f.StringVar(&cfg.Prefix, "prefix", cfg.Prefix, "Variable prefix `C` for reified nodes")
	f.IntVar(&cfg.Indent, "indent", cfg.Indent, "Indent level `N`; -1 writes one graph per line")
	f.BoolVar(&cfg.NodeTops, "node-tops", cfg.NodeTops, "Mark nested nodes with :TOP before decoding")
	f.BoolVar(&cfg.Conceptualize, "conceptualize", cfg.Conceptualize, "Type every node and promote constants to nodes")
	f.BoolVar(&cfg.Triples, "triples", cfg.Triples, "Write triple conjunctions instead of PENMAN")
	f.StringVar(&cfg.MissingConcept, "missing-concept", cfg.MissingConcept, "Concept for untyped nodes; empty disables")
	f.BoolVar(&cfg.KeepComments, "keep-comments", cfg.KeepComments, "Copy graph comments to the output")

	cmd.AddCommand(a.newStatsCmd(), a.newAlignCmd(), a.newMisalignCmd())

	return cmd
}

// initLogger builds a production logger on stderr; --verbose lowers the
// level to debug.
func (a *app) initLogger(*cobra.Command, []string) error {
	config := zap.NewProductionConfig()
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	return nil
}

// flagFields maps root flags to the config fields they override.
var flagFields = map[string]func(dst *pipeline.Config, src pipeline.Config){
	"canonical-roles": func(d *pipeline.Config, s pipeline.Config) { d.CanonicalRoles = s.CanonicalRoles },
	"reify":           func(d *pipeline.Config, s pipeline.Config) { d.Reify = s.Reify },
	"collapse":        func(d *pipeline.Config, s pipeline.Config) { d.Collapse = s.Collapse },
	"prefix":          func(d *pipeline.Config, s pipeline.Config) { d.Prefix = s.Prefix },
	"indent":          func(d *pipeline.Config, s pipeline.Config) { d.Indent = s.Indent },
	"node-tops":       func(d *pipeline.Config, s pipeline.Config) { d.NodeTops = s.NodeTops },
	"conceptualize":   func(d *pipeline.Config, s pipeline.Config) { d.Conceptualize = s.Conceptualize },
	"triples":         func(d *pipeline.Config, s pipeline.Config) { d.Triples = s.Triples },
	"missing-concept": func(d *pipeline.Config, s pipeline.Config) { d.MissingConcept = s.MissingConcept },
	"keep-comments":   func(d *pipeline.Config, s pipeline.Config) { d.KeepComments = s.KeepComments },
}

// mergeConfig loads path (if any) and applies only the flags set on the
// command line over it.
func mergeConfig(cmd *cobra.Command, flags pipeline.Config, path string) (pipeline.Config, error) {
	if path == "" {
		return flags, nil
	}
	cfg, err := pipeline.LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if apply, ok := flagFields[f.Name]; ok {
			apply(&cfg, flags)
		}
	})

	return cfg, cfg.Validate()
}

func (a *app) runNormalize(cmd *cobra.Command, cfg pipeline.Config, input string) error {
	text, err := readInput(cmd, input)
	if err != nil {
		return err
	}
	p, err := pipeline.New(cfg, a.logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	_, err = p.Run(ctx, text, cmd.OutOrStdout())

	return err
}

// readInput returns the contents of path, or of stdin for "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return string(data), nil
}

// commandContext returns the command's context or Background when unset.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
