package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edafy/ingest-cli/internal/resilience"
	"github.com/edafy/ingest-cli/internal/transfer"
)

var transferRemoteDir string

var transferCmd = &cobra.Command{
	Use:   "transfer <file>...",
	Short: "Move raw files to the remote FTP store",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		remoteDir := transferRemoteDir
		if remoteDir == "" {
			remoteDir = cfg.FTP.RemoteDir
		}

		retry := resilience.FromRetryConfig(cfg.FTP.MaxAttempts, cfg.FTP.BackoffMs, 0, 0, -1)

		u := transfer.NewUploader(transfer.Options{
			Host:     cfg.FTP.Host,
			User:     cfg.FTP.User,
			Password: cfg.FTP.Password,
			Timeout:  time.Duration(cfg.FTP.TimeoutSecs) * time.Second,
			Retry:    retry,
			OnUploadProgress: func(file string, pct int) {
				if pct%10 == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %d%%\n", file, pct)
				}
			},
			OnUploadComplete: func(file string) {
				zap.L().Info("upload complete", zap.String("file", file))
			},
		})
		return u.UploadAll(cmd.Context(), args, remoteDir)
	},
}

func init() {
	transferCmd.Flags().StringVarP(&transferRemoteDir, "remote-dir", "d", "", "remote directory (defaults to ftp.remote_dir)")
	rootCmd.AddCommand(transferCmd)
}
