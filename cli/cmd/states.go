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

// statesCmd represents the states command
var statesCmd = &cobra.Command{
	Use:     "states",
	Aliases: []string{"tree", "s"},
	Short:   "show the descent states as a tree",
	Long: `The states command shows every state of the descent sequence with the events
it accepts and where they lead. Terminal states are marked as such.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		render.DrawStateTree(landing.NewEngine(), palette(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(statesCmd)
}
