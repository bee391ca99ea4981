// Root command for the abacus CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/abacus/internal/paths"
	"github.com/mesh-intelligence/abacus/pkg/abacus"
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
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configBackend      string
	configDataDir      string
	configSaveStrategy string
	configDebounceMS   int
)

var rootCmd = &cobra.Command{
	Use:     "abacus",
	Short:   "Abacus is a local task-progress estimator",
	Long: `Abacus tracks tasks made of weighted acceptance criteria, logs work in
days, and projects an on-track / at-risk verdict from story points and
velocity. All state lives in a local store; there is no server.`,
	Version:       abacus.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return sysError{err: err}
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return sysError{err: err}
		}

		configBackend = cfg.GetString(cfgKeyBackend)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		configSaveStrategy = cfg.GetString(cfgKeySaveStrategy)
		configDebounceMS = cfg.GetInt(cfgKeyDebounceMS)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: .abacus-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output in JSON format")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(pointsCmd)
	rootCmd.AddCommand(velocityCmd)
	rootCmd.AddCommand(criteriaCmd)
	rootCmd.AddCommand(saveCmd)
}
