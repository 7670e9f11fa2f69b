/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/scnet/internal/iofs"
	"github.com/gnames/scnet/internal/iologger"
	app "github.com/gnames/scnet/pkg"
	"github.com/gnames/scnet/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "scnet",
		Short:   "scnet generates synthetic supply-chain networks",
		Long: `scnet generates synthetic supply-chain network datasets for
testing planning and optimization software.

A dataset contains plants with production lines, distribution
centers, customers, products of several sizes, transportation routes,
daily customer demand, line capabilities and production rates.

Output formats:
  - xlsx: Excel workbook with ten sheets (default)
  - sqlite: SQLite database
  - json: single JSON document
  - postgres: PostgreSQL database created by 'scnet create'
    and upgraded by 'scnet migrate'

Configuration precedence (highest to lowest):
  1. CLI flags
  2. SCNET_* environment variables
  3. ~/.config/scnet/config.yaml
  4. built-in defaults`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "scnet version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// -V is consistent with other gn projects
	rootCmd.Flags().BoolP("version", "V", false, "version for scnet")

	rootCmd.AddCommand(
		getGenerateCmd(),
		getCreateCmd(),
		getMigrateCmd(),
		getConfigCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Hardcoded defaults until user's settings are known.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	logDir := config.LogDir(homeDir)
	if err = iologger.Init(logDir, defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// the file was created above, keep what is already there
	if err = iologger.Init(logDir, cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// initConfig reads config.yaml and environment variables. Keys that
// are absent in both keep default values.
func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	res := config.New()
	if err = v.Unmarshal(res); err != nil {
		return nil, ConfigError(cfgPath, err)
	}

	// Unmarshal merges lists into defaults, sizes are replaced instead.
	if v.IsSet("generation.sizes") {
		res.Generation.Sizes = v.GetStringSlice("generation.sizes")
	}

	return res, nil
}

func initEnvVars(v *viper.Viper) {
	// Env variables are bound one by one, so it is clear which ones
	// are supported. They follow persistent fields of config.ToOptions().
	v.SetEnvPrefix(strings.ToUpper(config.AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Generation
	v.BindEnv("generation.periods")
	v.BindEnv("generation.plants")
	v.BindEnv("generation.customers")
	v.BindEnv("generation.route_rate")
	v.BindEnv("generation.products_per_size")
	v.BindEnv("generation.freight_per_km")
	v.BindEnv("generation.daily_distance_km")
	v.BindEnv("generation.capability_switch")
	v.BindEnv("generation.lot_size")
	v.BindEnv("generation.seed")

	// Output
	v.BindEnv("output.format")
	v.BindEnv("output.dir")

	// Database
	v.BindEnv("database.host")
	v.BindEnv("database.port")
	v.BindEnv("database.user")
	v.BindEnv("database.password")
	v.BindEnv("database.database")
	v.BindEnv("database.ssl_mode")
	v.BindEnv("database.batch_size")

	// Log
	v.BindEnv("log.level")
	v.BindEnv("log.format")
	v.BindEnv("log.destination")

	v.BindEnv("jobs_number")

	v.AutomaticEnv()
}
