// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBuildingsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "buildings [query]",
		Short: "List buildings, optionally filtered by name or abbreviation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			out := cmd.OutOrStdout()
			for _, b := range l.nav.Directory().Search(query) {
				fmt.Fprintf(out, "%d\t%s\t%s\n", b.ID, b.Label(), b.Coord)
			}

			return nil
		},
	}
}
