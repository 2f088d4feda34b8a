package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/edafy/ingest-cli/internal/qc"
)

var (
	qcDataType string
	qcReport   string
)

var qcCmd = &cobra.Command{
	Use:   "qc <file>...",
	Short: "Validate extracted file metadata against the rule catalog",
	Long:  "Extracts metadata for each file via the extraction gateway and runs the format's validation rules, printing a QC report. Files are processed in parallel; one file's extraction failure never blocks the others.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dt, err := parseDataType(qcDataType)
		if err != nil {
			return err
		}

		previewer := initPreviewer()
		reports, err := previewer.Preview(cmd.Context(), args, dt)
		if err != nil {
			return err
		}

		if err := qc.WriteText(cmd.OutOrStdout(), reports); err != nil {
			return err
		}
		if qcReport != "" {
			if err := qc.WriteXLSX(qcReport, reports); err != nil {
				return err
			}
			zap.L().Info("qc report written", zap.String("path", qcReport))
		}

		for _, rep := range reports {
			if !rep.Result.Valid {
				return eris.New("qc: one or more files failed validation")
			}
		}
		return nil
	},
}

var qcRulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the validation rule catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := yaml.Marshal(qc.Catalog())
		if err != nil {
			return eris.Wrap(err, "qc: marshal catalog")
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	qcCmd.Flags().StringVarP(&qcDataType, "type", "t", "seismic", "ingestion family: seismic, well, or other")
	qcCmd.Flags().StringVarP(&qcReport, "report", "r", "", "write the report as a spreadsheet to this path")
	qcCmd.AddCommand(qcRulesCmd)
	rootCmd.AddCommand(qcCmd)
}
