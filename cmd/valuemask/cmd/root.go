// Copyright 2025 Greenmask
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/greenmaskio/valuemask/cmd/valuemask/cmd/list_transformers"
	"github.com/greenmaskio/valuemask/cmd/valuemask/cmd/show_transformer"
	"github.com/greenmaskio/valuemask/internal/domains"
	_ "github.com/greenmaskio/valuemask/internal/transformers"
	"github.com/greenmaskio/valuemask/internal/transformers/utils"
	configUtils "github.com/greenmaskio/valuemask/internal/utils/config"
	"github.com/greenmaskio/valuemask/internal/utils/logger"
	"github.com/greenmaskio/valuemask/pkg/toolkit"
)

const (
	envPrefix     = "VALUEMASK"
	appConfigDir  = "valuemask"
	appConfigFile = "config.yml"
)

var (
	Version    string
	Commit     string
	CommitDate string

	RootCmd = &cobra.Command{
		Use:   "valuemask",
		Short: "Valuemask anonymizes single field values read from stdin",
		Long: "Valuemask is a set of value transformers used by the database anonymization pipeline. " +
			"Every transformer reads a raw value line from stdin and writes the anonymized value line " +
			"to stdout. Empty values are passed through as is. Logs are written to stderr",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.SetLogLevel(Config.Log.Level, Config.Log.Format)
		},
	}
	cfgFile string
	Config  = domains.NewConfig()
)

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				Commit = setting.Value
			}
			if setting.Key == "vcs.time" {
				CommitDate = setting.Value
			}
		}
	}
	if Version != "" {
		RootCmd.Version = fmt.Sprintf("%s %s %s", Version, Commit, CommitDate)
	} else {
		RootCmd.Version = fmt.Sprintf("%s %s", Commit, CommitDate)
	}

	cobra.OnInitialize(initConfig)
	// Removing short help flag from default
	RootCmd.PersistentFlags().BoolP("help", "", false, "help for valuemask")
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file ")
	RootCmd.PersistentFlags().StringP("log-format", "", logger.LogFormatTextValue, "logging format [text|json]")
	RootCmd.PersistentFlags().StringP("log-level", "", zerolog.LevelInfoValue,
		fmt.Sprintf(
			"logging level %s|%s|%s",
			zerolog.LevelDebugValue,
			zerolog.LevelInfoValue,
			zerolog.LevelWarnValue,
		),
	)

	for _, name := range utils.DefaultTransformerRegistry.Names() {
		def, _ := utils.DefaultTransformerRegistry.Get(name)
		RootCmd.AddCommand(toolkit.NewCmd(def).Command)
	}
	RootCmd.AddCommand(list_transformers.Cmd)
	RootCmd.AddCommand(show_transformer.Cmd)

	if err := bindFlags(); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	RootCmd.InitDefaultCompletionCmd()
	RootCmd.InitDefaultHelpCmd()
	RootCmd.InitDefaultVersionFlag()

	for _, c := range RootCmd.Commands() {
		if c.Name() == "completion" || c.Name() == "help" {
			c.DisableFlagParsing = true
			for _, subc := range c.Commands() {
				subc.DisableFlagParsing = true
			}
		}
	}
}

func bindFlags() error {
	if err := viper.BindPFlag("log.format", RootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		return err
	}
	return viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = defaultConfigFile()
	}
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal().Err(err).Msg("error reading from config file")
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.Unmarshal(Config, configUtils.DecoderConfig); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

// defaultConfigFile - path of the config in the platform specific config directory if it exists
func defaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, appConfigDir, appConfigFile)
	if _, err = os.Stat(p); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("path", p).Msg("unable to access default config file")
		}
		return ""
	}
	return p
}
