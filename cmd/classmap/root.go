// Root command for the classmap CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/classmap/internal/paths"
	"github.com/mesh-intelligence/classmap/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configDataDir    string
	configListen     string
	configCORSOrigin string
)

var rootCmd = &cobra.Command{
	Use:   "classmap",
	Short: "classmap is a data-modeling backend",
	Long: `classmap stores user-defined classes, their typed attributes and
free-form properties, JSON data records, and typed connections between
classes, backed by SQLite and served over HTTP.`,
	Version:      types.Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configListen = cfg.GetString(cfgKeyListen)
		configCORSOrigin = cfg.GetString(cfgKeyCORSOrigin)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.classmap-db)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > CLASSMAP_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > CLASSMAP_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
