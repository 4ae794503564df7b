package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nattapongd/classmate/internal/google"
	"github.com/nattapongd/classmate/internal/logging"
)

func newAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Re-run the Google authorization flow",
		Long: `Run the browser consent flow and overwrite the stored credential,
even if one already exists. Useful after changing scopes or accounts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := logging.New(cfg.LogLevel)

			store := google.NewStore(cfg.TokenFile)
			auth := google.NewAuthorizer(store, cfg.ClientSecretFile, os.Stdin, os.Stdout, logger)
			if err := auth.Reauthorize(context.Background()); err != nil {
				return fmt.Errorf("authorization failed: %w", err)
			}

			fmt.Printf("บันทึกข้อมูลการเข้าสู่ระบบไว้ที่ %s แล้ว\n", cfg.TokenFile)
			return nil
		},
	}
}
