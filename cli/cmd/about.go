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

	"github.com/AliceO2Group/Lander/app"
	"github.com/AliceO2Group/Lander/common/product"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// aboutCmd represents the about command
var aboutCmd = &cobra.Command{
	Use:     "about",
	Aliases: []string{"version"},
	Short:   fmt.Sprintf("about %s", app.NAME),
	Long:    `The about command shows some basic information on this utility.`,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		o := cmd.OutOrStdout()
		white := color.New(color.FgHiWhite).SprintFunc()
		green := color.New(color.FgHiGreen).SprintFunc()

		fmt.Fprintf(o, "%s *** %s\n", white(app.PRETTY_SHORTNAME), green(product.PRETTY_FULLNAME))
		fmt.Fprintf(o, `
version:         %s
config:          %s
log level:       %s
`,
			green(viper.GetString("version")),
			green(func() string {
				if len(viper.ConfigFileUsed()) > 0 {
					return viper.ConfigFileUsed()
				}
				return "builtin"
			}()),
			green(viper.GetString("log.level")))

		fmt.Fprintf(o, "\n%s\n", color.HiBlueString(
			"This program is free software: you can redistribute it and/or modify \n"+
				"it under the terms of the GNU General Public License as published by \n"+
				"the Free Software Foundation, either version 3 of the License, or \n"+
				"(at your option) any later version."))
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
