package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edafy/ingest-cli/internal/geoexport"
	"github.com/edafy/ingest-cli/internal/store"
)

var (
	exportOut  string
	exportLine string
)

var exportCmd = &cobra.Command{
	Use:   "export [survey-name]",
	Short: "Export line coordinate tracks as a shapefile",
	Long:  "Collects back-filled coordinate tracks and writes them as a POLYLINE shapefile: every line of a survey looked up by name, or a single line picked with --line.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportLine == "" && len(args) == 0 {
			return eris.New("export: a survey name or --line is required")
		}
		ctx := cmd.Context()

		pool, err := initPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		st := store.New(pool)
		var tracks []geoexport.LineTrack
		if exportLine != "" {
			line, err := st.FindLine(ctx, exportLine)
			if err != nil {
				return err
			}
			coords, err := st.ListCoordinates(ctx, line.ID)
			if err != nil {
				return err
			}
			tracks = append(tracks, geoexport.LineTrack{
				Name:        line.Key(),
				Coordinates: coords,
			})
		} else {
			surveyID, err := st.FindSurveyID(ctx, args[0])
			if err != nil {
				return err
			}
			lines, err := st.ListLinesForSurvey(ctx, surveyID)
			if err != nil {
				return err
			}
			for _, line := range lines {
				coords, err := st.ListCoordinates(ctx, line.ID)
				if err != nil {
					return err
				}
				tracks = append(tracks, geoexport.LineTrack{
					Name:        line.Key(),
					Coordinates: coords,
				})
			}
		}

		if err := geoexport.WriteShapefile(exportOut, tracks); err != nil {
			return err
		}
		zap.L().Info("shapefile written",
			zap.String("path", exportOut),
			zap.Int("lines", len(tracks)))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "lines.shp", "output shapefile path")
	exportCmd.Flags().StringVarP(&exportLine, "line", "l", "", "export a single line by composite name")
	rootCmd.AddCommand(exportCmd)
}
