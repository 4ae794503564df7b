package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nattapongd/classmate/internal/config"
)

// rootCmd represents the base command for the classmate application
var rootCmd = &cobra.Command{
	Use:   "classmate",
	Short: "Browse Google Classroom assignments and summarize them with AI",
	Long: `classmate is an interactive assistant for students. It lists your
Google Classroom courses and assignments, fetches assignment attachments
from Google Drive, and produces AI summaries of assignment text and of
image/PDF attachments.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

var (
	tokenFileFlag    string
	clientSecretFlag string
)

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "classmate version %s\n" .Version}}`)

	// If no subcommand is provided, run the interactive menu by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "menu")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tokenFileFlag, "token-file", "", "Path to the stored OAuth credential (default: token.json)")
	rootCmd.PersistentFlags().StringVar(&clientSecretFlag, "client-secret", "", "Path to the Google client secret file (default: client_secret.json)")

	rootCmd.AddCommand(newMenuCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// loadConfig loads the environment configuration and applies the
// root-command flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	if tokenFileFlag != "" {
		cfg.TokenFile = tokenFileFlag
	}
	if clientSecretFlag != "" {
		cfg.ClientSecretFile = clientSecretFlag
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("classmate version %s\n", version)
		},
	}
}
