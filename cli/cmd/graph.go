/*
 * === This file is part of Lander ===
 *
 * Copyright 2026 the Lander authors.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package cmd

import (
	"fmt"
	"strings"

	"github.com/AliceO2Group/Lander/core/landing"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:     "graph",
	Aliases: []string{"g", "dot"},
	Short:   "print the descent sequence as a diagram",
	Long: fmt.Sprintf(`The graph command prints the transition table as diagram source, ready for
Graphviz or Mermaid. The initial state is highlighted.

Formats: %s.`, strings.Join(landing.GraphFormats(), ", ")),
	Example: `  lander graph | dot -Tsvg > descent.svg
  lander graph -f mermaid`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}
		out, err := landing.NewEngine().Graph(format)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("format", "f", landing.GraphGraphviz, "diagram format ("+strings.Join(landing.GraphFormats(), ", ")+")")
}
