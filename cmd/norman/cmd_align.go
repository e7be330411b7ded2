package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/norman/align"
	"github.com/katalvlaran/norman/core"
	"github.com/katalvlaran/norman/penman"
)

// misalignIndent is the indentation of the top-mismatch listing.
const misalignIndent = 2

func (a *app) newAlignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "align LHS RHS LHS-OUT RHS-OUT",
		Short: `Write the graphs whose "# ::id" appears in both corpora`,
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			lhs, err := readIdentified(args[0])
			if err != nil {
				return err
			}
			rhs, err := readIdentified(args[1])
			if err != nil {
				return err
			}

			al := align.Align(lhs, rhs)
			stderr := cmd.ErrOrStderr()
			if len(al.LHSOnly) > 0 {
				fmt.Fprintf(stderr, "%d unaligned on lhs: %s\n", len(al.LHSOnly), strings.Join(al.LHSOnly, ", "))
			}
			if len(al.RHSOnly) > 0 {
				fmt.Fprintf(stderr, "%d unaligned on rhs: %s\n", len(al.RHSOnly), strings.Join(al.RHSOnly, ", "))
			}
			a.logger.Info("corpora aligned", zap.Int("shared", len(al.Shared)))

			enc := penman.NewEncoder()
			if err := writeAligned(args[2], al.Shared, lhs, enc); err != nil {
				return err
			}

			return writeAligned(args[3], al.Shared, rhs, enc)
		},
	}
}

func (a *app) newMisalignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "misalign A B",
		Short: "List parallel graphs whose tops differ",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := readGraphs(cmd, args[0])
			if err != nil {
				return err
			}
			right, err := readGraphs(cmd, args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, len(left), len(right))
			enc := penman.NewEncoder(penman.WithIndent(misalignIndent))
			for _, m := range align.TopMismatches(left, right) {
				l, err := enc.Encode(m.Left)
				if err != nil {
					return err
				}
				r, err := enc.Encode(m.Right)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d\n%s\n%s\n", m.Index, l, r)
			}

			return nil
		},
	}
}

func readIdentified(path string) (map[string]*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	return align.ReadIdentified(f)
}

func writeAligned(path string, ids []string, graphs map[string]*core.Graph, enc *penman.Encoder) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := align.WriteAligned(f, ids, graphs, enc); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func readGraphs(cmd *cobra.Command, path string) ([]*core.Graph, error) {
	text, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	results, _ := penman.DecodeAll(text)
	gs := make([]*core.Graph, len(results))
	for i, r := range results {
		gs[i] = r.Graph
	}

	return gs, nil
}
