package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nattapongd/classmate/internal/classroom"
	"github.com/nattapongd/classmate/internal/drive"
	"github.com/nattapongd/classmate/internal/google"
	"github.com/nattapongd/classmate/internal/logging"
	"github.com/nattapongd/classmate/internal/summarize"
	"github.com/nattapongd/classmate/internal/workflow"
)

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive Classroom menu",
		Long: `Authorize against Google once, then loop over a text menu to list
courses, list assignments, and summarize assignments with AI.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := logging.New(cfg.LogLevel)
			ctx := context.Background()

			store := google.NewStore(cfg.TokenFile)
			auth := google.NewAuthorizer(store, cfg.ClientSecretFile, os.Stdin, os.Stdout, logger)
			httpClient, err := auth.Client(ctx)
			if err != nil {
				return fmt.Errorf("authorization failed: %w", err)
			}

			classroomClient, err := classroom.NewClient(ctx, httpClient, logger)
			if err != nil {
				return err
			}
			driveClient, err := drive.NewClient(ctx, httpClient, logger)
			if err != nil {
				return err
			}
			summarizer := summarize.New(summarize.Config{
				APIKey:  cfg.AIAPIKey,
				BaseURL: cfg.AIBaseURL,
				Model:   cfg.AIModel,
			}, logger)

			controller := workflow.New(classroomClient, driveClient, summarizer, os.Stdin, os.Stdout, logger)
			return controller.Run(ctx)
		},
	}
}
