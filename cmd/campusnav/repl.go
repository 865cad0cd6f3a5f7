// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/geo"
	"github.com/katalvlaran/campusnav/meeting"
	"github.com/katalvlaran/campusnav/navigator"
)

const (
	promptPerson1 = "Enter person 1's building (partial name or abbreviation), or #> "
	promptPerson2 = "Enter person 2's building (partial name or abbreviation)> "
	quitToken     = "#"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Ask for two buildings at a time and print the meeting route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			p := newPalette(out)
			fmt.Fprintln(out, p.Banner("** Navigating campus open street map **"))
			fmt.Fprintln(out)

			l, err := a.load(cmd.Context())
			if err != nil {
				fmt.Fprintln(out, p.Warn("**Error: "+err.Error()))

				return err
			}
			printStats(out, l)

			if err = repl(cmd.Context(), l.nav, cmd.InOrStdin(), out, p); err != nil {
				return err
			}
			fmt.Fprintln(out, p.Banner("** Done **"))

			return nil
		},
	}
}

// repl reads pairs of queries until "#" or end of input.
func repl(ctx context.Context, nav *navigator.Navigator, in io.Reader, out io.Writer, p palette) error {
	sc := bufio.NewScanner(in)
	read := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			return "", false
		}

		return strings.TrimSpace(sc.Text()), true
	}

	for {
		fmt.Fprintln(out)
		q1, ok := read(promptPerson1)
		if !ok || q1 == quitToken {
			break
		}
		q2, ok := read(promptPerson2)
		if !ok {
			break
		}

		route, err := nav.FindRoute(ctx, q1, q2)
		var (
			bnf *navigator.BuildingNotFoundError
			nre *meeting.NoReachableError
		)
		switch {
		case err == nil:
			printRoute(out, p, route)
		case errors.As(err, &bnf):
			fmt.Fprintln(out, p.Warn(fmt.Sprintf("Person %d's building not found", bnf.Person)))
		case errors.As(err, &nre):
			printUnreachable(out, p, nav, q1, q2, nre)
		case errors.Is(err, meeting.ErrUnplaceable):
			fmt.Fprintln(out, p.Warn("**Error: "+err.Error()))
		default:
			return err
		}
	}

	return sc.Err()
}

func printRoute(out io.Writer, p palette, r *navigator.Route) {
	printPoint(out, p, "Person 1's point:", r.Person1)
	printPoint(out, p, "Person 2's point:", r.Person2)
	printPoint(out, p, "Destination Building:", r.Meeting)
	fmt.Fprintln(out)

	printNode(out, p, "Nearest P1 node:", r.Legs[0].Start(), r.Legs[0].Coordinates[0])
	printNode(out, p, "Nearest P2 node:", r.Legs[1].Start(), r.Legs[1].Coordinates[0])
	printNode(out, p, "Nearest destination node:", r.MeetNode, r.Legs[0].Coordinates[len(r.Legs[0].Coordinates)-1])

	for i, leg := range r.Legs {
		fmt.Fprintf(out, "\nPerson %d's distance to dest: %s miles\n", i+1, strconv.FormatFloat(leg.Miles, 'g', 8, 64))
		fmt.Fprintln(out, p.Path("Path: "+joinPath(leg.Nodes)))
	}
}

// printUnreachable shows where the search stood before giving up: both
// starts and the last candidate tried, then their snapped vertices.
func printUnreachable(out io.Writer, p palette, nav *navigator.Navigator, q1, q2 string, e *meeting.NoReachableError) {
	p1, ok1 := nav.Directory().Lookup(q1)
	p2, ok2 := nav.Directory().Lookup(q2)
	if ok1 && ok2 {
		printPoint(out, p, "Person 1's point:", p1)
		printPoint(out, p, "Person 2's point:", p2)
		if e.Tried > 0 {
			printPoint(out, p, "Destination Building:", e.Last)
		}
		fmt.Fprintln(out)

		for i, v := range e.Starts {
			c, _ := nav.Node(v)
			printNode(out, p, fmt.Sprintf("Nearest P%d node:", i+1), v, c)
		}
		if e.LastPlaced {
			c, _ := nav.Node(e.LastVertex)
			printNode(out, p, "Nearest destination node:", e.LastVertex, c)
		}
	}
	fmt.Fprintln(out, p.Warn("\nSorry, destination unreachable."))
}

func printPoint(out io.Writer, p palette, title string, b campus.Building) {
	fmt.Fprintf(out, "%s\n %s\n %s\n", p.Heading(title), b.Name, b.Coord)
}

func printNode(out io.Writer, p palette, title string, id int64, c geo.Coordinate) {
	fmt.Fprintf(out, "%s\n %d\n %s\n", p.Heading(title), id, c)
}

func joinPath(nodes []int64) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = strconv.FormatInt(n, 10)
	}

	return strings.Join(parts, "->")
}
