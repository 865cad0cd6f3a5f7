// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/gpx"
)

func newRouteCmd(a *app) *cobra.Command {
	var asJSON, asGPX bool

	cmd := &cobra.Command{
		Use:   "route <person1-building> <person2-building>",
		Short: "Print the meeting route for one pair of buildings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON && asGPX {
				return errors.New("--json and --gpx are mutually exclusive")
			}
			l, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			route, err := l.nav.FindRoute(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")

				return enc.Encode(route)
			case asGPX:
				return gpx.Write(out, route)
			}
			printRoute(out, newPalette(out), route)

			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the route as JSON")
	cmd.Flags().BoolVar(&asGPX, "gpx", false, "print the route as GPX 1.1")

	return cmd
}
