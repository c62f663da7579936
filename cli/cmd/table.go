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
	"github.com/AliceO2Group/Lander/cli/render"
	"github.com/AliceO2Group/Lander/core/landing"
	"github.com/spf13/cobra"
)

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:     "table",
	Aliases: []string{"transitions", "t"},
	Short:   "list every transition of the descent sequence",
	Long: `The table command lists every transition of the descent sequence: the source
state, the event that triggers it, and the destination state.

Output formats: table (default), yaml, json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}
		return render.WriteTransitions(landing.NewEngine(), format, palette(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().StringP("output", "o", render.OutputTable, "output format (table, yaml, json)")
}
