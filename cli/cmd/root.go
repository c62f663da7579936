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

// Package cmd contains all the entry points for command line
// subcommands, following library convention.
package cmd

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/AliceO2Group/Lander/app"
	"github.com/AliceO2Group/Lander/cli/render"
	"github.com/AliceO2Group/Lander/common/logger"
	"github.com/AliceO2Group/Lander/common/product"
	"github.com/AliceO2Group/Lander/core/landing"
	"github.com/AliceO2Group/Lander/core/session"
	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logger.New(logrus.StandardLogger(), app.NAME)

var cfgFile string

// rootCmd runs an interactive descent when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   app.NAME,
	Short: "simulate a spacecraft descent sequence",
	Long: fmt.Sprintf(`The %s is a command line program that walks a spacecraft through its
descent sequence, from cruise to touchdown, one event at a time.

Events are read as whitespace-separated words from standard input. The session
ends when a terminal state is reached or when input runs out.`, product.PRETTY_FULLNAME),
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSession,
}

func GetRootCmd() *cobra.Command { // Used for docs generator
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.WithField("error", err).Fatal("cannot run command")
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	viper.Set("version", product.VERSION_BUILD)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("configuration file (default $HOME/.config/%s/settings.yaml)", app.NAME))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "show verbose output for debug purposes")
	rootCmd.PersistentFlags().String("log-level", "warning", "log level on standard error (trace, debug, info, warning, error)")
	rootCmd.PersistentFlags().Bool("color", true, "colorize state names when writing to a terminal")

	rootCmd.Flags().Bool("menu", false, "pick events from an interactive menu instead of typing them")
	rootCmd.Flags().Bool("metrics", false, "dump session metrics to standard error when the session ends")
	rootCmd.Flags().Int("max-token-length", session.DefaultMaxTokenLength, "maximum length of an event name, longer input is truncated")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
	viper.BindPFlag("menu", rootCmd.Flags().Lookup("menu"))
	viper.BindPFlag("metrics", rootCmd.Flags().Lookup("metrics"))
	viper.BindPFlag("input.maxTokenLength", rootCmd.Flags().Lookup("max-token-length"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("log.level", "warning")
	viper.SetDefault("verbose", false)
	viper.SetDefault("color", true)
	viper.SetDefault("menu", false)
	viper.SetDefault("metrics", false)
	viper.SetDefault("input.maxTokenLength", session.DefaultMaxTokenLength)

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.WithField("error", err).Error("cannot find configuration file")
			os.Exit(1)
		}

		// Search config in .config/lander directory with name "settings.yaml"
		viper.AddConfigPath(path.Join(home, ".config/"+app.NAME))
		viper.SetConfigName("settings")
	}

	viper.SetEnvPrefix(strings.ToUpper(app.NAME))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.WithField("file", viper.ConfigFileUsed()).
			Debug("configuration loaded")
	}

	if err := logger.SetLevel(viper.GetString("log.level")); err != nil {
		log.WithField("level", viper.GetString("log.level")).
			Warn("unknown log level, keeping default")
	}
	if viper.GetBool("verbose") {
		viper.Set("log.level", "debug")
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func palette() *render.Palette {
	return render.NewPalette(viper.GetBool("color") && !color.NoColor)
}

func runSession(cmd *cobra.Command, _ []string) error {
	engine := landing.NewEngine()
	if err := engine.Validate(); err != nil {
		return fmt.Errorf("transition table is inconsistent: %w", err)
	}

	opts := []session.Option{
		session.WithStateFormatter(palette().State),
	}
	var source session.EventSource
	if viper.GetBool("menu") {
		source = session.NewMenuSource()
		opts = append(opts, session.WithPrompt(""))
	} else {
		source = session.NewTokenReader(cmd.InOrStdin(), viper.GetInt("input.maxTokenLength"))
	}

	s := session.New(engine, source, cmd.OutOrStdout(), opts...)
	summary, err := s.Run()
	if err != nil {
		// a broken input stream ends the session like end of input does
		log.WithSession(s.ID()).
			WithError(err).
			Warn("session ended on a read error")
	}
	log.WithSession(s.ID()).
		WithFields(logrus.Fields{
			"final":    summary.Final,
			"outcome":  summary.Outcome,
			"accepted": summary.Accepted,
			"rejected": summary.Rejected,
		}).
		Info("session over")

	if viper.GetBool("metrics") {
		if err := session.WriteMetrics(cmd.ErrOrStderr()); err != nil {
			log.WithError(err).Warn("cannot dump session metrics")
		}
	}
	return nil
}
