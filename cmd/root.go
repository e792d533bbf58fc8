// Package cmd implements the emelder command line interface.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"emelder/internal/config"
	"emelder/internal/log"
)

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config

	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "emelder",
	Short: "Generate tournament registration files for the official competition program",
	Long: `emelder groups a club's tournament registrations into brackets and
writes them as .dm4 files in the legacy format the official
competition-management program imports.

The club record and athlete registry live as JSON files next to the
config; 'emelder register' turns a registration manifest into one
.dm4 file per (age category, division) bracket.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/emelder/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write a debug log to the config directory")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("club_file", defaults.ClubFile)
	viper.SetDefault("athletes_file", defaults.AthletesFile)
	viper.SetDefault("tournament_basedir", defaults.TournamentBasedir)
	viper.SetDefault("default_gender_category", defaults.DefaultGenderCategory)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(config.DefaultConfigDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create the default one
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := config.DefaultConfigPath()
			if defaultPath != "" {
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
				// If write fails, just continue with defaults (no config file)
			}
		}
	}

	_ = viper.Unmarshal(&cfg)

	if debug || os.Getenv("EMELDER_DEBUG") != "" {
		initLog()
	}
}

func initLog() {
	dir := config.DefaultConfigDir()
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return
	}
	cleanup, err := log.Init(filepath.Join(dir, "debug.log"))
	if err != nil {
		return
	}
	logCleanup = cleanup
	log.SetEnabled(true)
	if debug {
		log.SetMinLevel(log.LevelDebug)
	} else {
		// env-var runs skip the chattier debug entries
		log.SetMinLevel(log.LevelInfo)
	}
	log.Info(log.CatCLI, "Debug logging enabled", "version", version)
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if logCleanup != nil {
		logCleanup()
	}
	return err
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
