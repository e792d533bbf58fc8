package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"emelder/internal/config"
	"emelder/internal/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage the emelder configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.ConfigFileUsed()
		if path == "" {
			path = config.DefaultConfigPath()
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a single config value",
	Long: `Set one top-level key in the config file. Comments and the
rest of the file are left untouched.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if !knownConfigKey(key) {
			return fmt.Errorf("unknown config key %q", key)
		}
		if key == "default_gender_category" {
			if _, err := domain.ParseGenderCategory(value); err != nil {
				return err
			}
		}
		path := viper.ConfigFileUsed()
		if path == "" {
			path = config.DefaultConfigPath()
		}
		if err := config.SaveValue(path, key, value); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
		return nil
	},
}

func knownConfigKey(key string) bool {
	for _, k := range []string{
		"club_file", "athletes_file", "tournament_basedir", "default_gender_category",
	} {
		if key == k {
			return true
		}
	}
	return false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultConfigPath()
		}
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
