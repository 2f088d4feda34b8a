package main

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/edafy/ingest-cli/internal/model"
	"github.com/edafy/ingest-cli/internal/qc"
)

var (
	scanDataType string
	scanRunQC    bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Classify files in a folder by extension",
	Long:  "Walks a folder, classifies each file for the chosen ingestion family, and prints the resulting records as YAML. Disallowed extensions are reported and skipped. With --qc the accepted files are also extracted and validated, and the QC report follows the listing.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dt, err := parseDataType(scanDataType)
		if err != nil {
			return err
		}

		records, skipped, err := scanDir(args[0], dt)
		if err != nil {
			return err
		}
		for _, path := range skipped {
			zap.L().Warn("extension not allowed for family, skipping",
				zap.String("file", path), zap.String("family", string(dt)))
		}

		out, err := yaml.Marshal(records)
		if err != nil {
			return eris.Wrap(err, "scan: marshal records")
		}
		if _, err := cmd.OutOrStdout().Write(out); err != nil {
			return err
		}
		if !scanRunQC {
			return nil
		}

		paths := make([]string, 0, len(records))
		for _, rec := range records {
			paths = append(paths, rec.Path)
		}
		reports, err := initPreviewer().Preview(cmd.Context(), paths, dt)
		if err != nil {
			return err
		}
		return qc.WriteText(cmd.OutOrStdout(), reports)
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanDataType, "type", "t", "seismic", "ingestion family: seismic, well, or other")
	scanCmd.Flags().BoolVar(&scanRunQC, "qc", false, "extract and validate the accepted files after classifying")
	rootCmd.AddCommand(scanCmd)
}

func parseDataType(s string) (model.DataType, error) {
	switch model.DataType(s) {
	case model.DataTypeSeismic, model.DataTypeWell, model.DataTypeOther:
		return model.DataType(s), nil
	default:
		return "", eris.Errorf("unknown ingestion family %q (want seismic, well, or other)", s)
	}
}

// scanDir classifies every regular file under dir, returning the
// accepted records and the paths whose extension the family rejects.
func scanDir(dir string, dt model.DataType) ([]model.FileRecord, []string, error) {
	var records []model.FileRecord
	var skipped []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rec := model.Classify(path, dt)
		if !model.AllowedExtension(rec.Extension, dt) {
			skipped = append(skipped, path)
			return nil
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, eris.Wrapf(err, "scan: %s", dir)
		}
		return nil, nil, eris.Wrapf(err, "scan: walk %s", dir)
	}
	return records, skipped, nil
}
