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

	"github.com/AliceO2Group/Lander/core/landing"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "check the built-in transition table",
	Long: `The validate command checks that every state appears in the transition table,
that every transition leads to a known state, that event names are unique
within each state and that the initial state is not terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := landing.NewEngine().Validate(); err != nil {
			return fmt.Errorf("transition table is inconsistent: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), palette().Good("transition table OK"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
