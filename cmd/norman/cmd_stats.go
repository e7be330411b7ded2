package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/norman/mapping"
	"github.com/katalvlaran/norman/penman"
	"github.com/katalvlaran/norman/pipeline"
	"github.com/katalvlaran/norman/stats"
)

func (a *app) newStatsCmd() *cobra.Command {
	var reifyPath, collapsePath string

	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Report corpus statistics before and after reification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reTable, coTable, err := loadTables(reifyPath, collapsePath)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			results, dropped := penman.DecodeAll(text, penman.WithRoles(penman.CanonicalRoles()))
			a.logger.Info("corpus decoded", zap.Int("graphs", len(results)), zap.Int("dropped_units", len(dropped)))

			rep, err := stats.Collect(results, reTable, coTable)
			if err != nil {
				return err
			}
			_, err = rep.WriteTo(cmd.OutOrStdout())

			return err
		},
	}
	cmd.Flags().StringVarP(&reifyPath, "reify", "r", "", "Reification mapping `FILE` (or builtin)")
	cmd.Flags().StringVarP(&collapsePath, "collapse", "c", "", "Dereification mapping `FILE` (or builtin)")
	_ = cmd.MarkFlagRequired("reify")
	_ = cmd.MarkFlagRequired("collapse")

	return cmd
}

// loadTables reads both tables, accepting pipeline.BuiltinTable for either.
func loadTables(rePath, coPath string) (mapping.Reifications, mapping.Dereifications, error) {
	var (
		re  mapping.Reifications
		co  mapping.Dereifications
		err error
	)
	if rePath == pipeline.BuiltinTable {
		re = mapping.DefaultReifications()
	} else if re, err = mapping.LoadReificationsFile(rePath); err != nil {
		return nil, nil, err
	}
	if coPath == pipeline.BuiltinTable {
		co = mapping.DefaultDereifications()
	} else if co, err = mapping.LoadDereificationsFile(coPath); err != nil {
		return nil, nil, err
	}

	return re, co, nil
}
