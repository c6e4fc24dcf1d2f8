package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"reelsort/internal/catalog"
)

func newCatalogCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the genre folders an organizing run can route movies into",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			cat := catalog.Default()
			if len(cfg.Library.Genres) > 0 {
				cat = catalog.New(cfg.Library.Genres)
			}

			labels := cat.Labels()
			rows := make([][]string, 0, len(labels))
			for i, label := range labels {
				rows = append(rows, []string{strconv.Itoa(i + 1), label})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Genre"},
				rows,
				[]columnAlignment{alignRight, alignLeft},
			))
			fmt.Fprintf(out, "%d genres\n", len(labels))
			return nil
		},
	}
}
