package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edafy/ingest-cli/internal/ingest"
	"github.com/edafy/ingest-cli/internal/model"
)

var commitCmd = &cobra.Command{
	Use:   "commit <manifest.yaml>",
	Short: "Commit an ingestion batch atomically",
	Long:  "Loads a batch manifest and runs the full orchestration inside one transaction: survey and lines, seismic data and pivots, coordinate back-fill, well metadata, and tag links. Any failure rolls everything back.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		batch, err := ingest.LoadBatch(args[0])
		if err != nil {
			return err
		}
		if batch.CRS == (model.CRS{}) {
			batch.CRS = model.CRS{SRID: cfg.Coordinate.SRID, Proj4: cfg.Coordinate.Proj4}
		}

		pool, err := initPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		o := ingest.NewOrchestrator(pool, initTransform())
		if err := o.Commit(ctx, batch); err != nil {
			zap.L().Error("batch rolled back", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commitCmd)
}
