package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/unihub/cli/pkg/config"
	"github.com/unihub/cli/pkg/errors"
	"github.com/unihub/cli/pkg/logger"
)

var (
	verbose    bool
	configPath string
	outputFmt  string
	apiURL     string
)

var rootCmd = &cobra.Command{
	Use:   "unihub-cli",
	Short: "UniHub CLI - University social platform",
	Long: `UniHub CLI is a command-line interface for the UniHub university
social platform. Browse students, manage friend requests, edit your
profile, and post on your faculty's voice board directly from the
terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize config and logger
		if err := config.Init(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(verbose)

		// Save output format to config
		config.SetString("output.format", outputFmt)

		if apiURL != "" {
			config.Override("api.base_url", apiURL)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errors.FormatError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/unihub/config.toml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "output", "text", "Output format: text, json")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Override the API base URL")

	// Add subcommands
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(friendsCmd)
	rootCmd.AddCommand(studentsCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(voiceCmd)
	rootCmd.AddCommand(versionCmd)
}
