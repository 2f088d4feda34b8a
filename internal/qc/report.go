package qc

import (
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// FileReport pairs one file with its validation result.
type FileReport struct {
	FileName string `json:"file_name" yaml:"file_name"`
	Format   Format `json:"format" yaml:"format"`
	Result   Result `json:"result" yaml:"result"`
}

// WriteText renders a plain-text QC report, one line per issue.
func WriteText(w io.Writer, reports []FileReport) error {
	for _, rep := range reports {
		status := "PASS"
		if !rep.Result.Valid {
			status = "FAIL"
		}
		if _, err := fmt.Fprintf(w, "%s  %-5s %s\n", status, rep.Format, rep.FileName); err != nil {
			return eris.Wrap(err, "qc: write report")
		}
		for _, issue := range rep.Result.Issues {
			if _, err := fmt.Fprintf(w, "      %s: %s\n", issue.Field, issue.Message); err != nil {
				return eris.Wrap(err, "qc: write report")
			}
		}
	}
	return nil
}

// WriteXLSX exports the QC report as a spreadsheet, one row per issue
// plus one summary row per clean file.
func WriteXLSX(path string, reports []FileReport) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("QC Report")
	if err != nil {
		return eris.Wrap(err, "qc: add sheet")
	}

	header := sheet.AddRow()
	for _, h := range []string{"File", "Format", "Status", "Field", "Message"} {
		header.AddCell().Value = h
	}

	for _, rep := range reports {
		if rep.Result.Valid {
			row := sheet.AddRow()
			row.AddCell().Value = rep.FileName
			row.AddCell().Value = string(rep.Format)
			row.AddCell().Value = "PASS"
			continue
		}
		for _, issue := range rep.Result.Issues {
			row := sheet.AddRow()
			row.AddCell().Value = rep.FileName
			row.AddCell().Value = string(rep.Format)
			row.AddCell().Value = "FAIL"
			row.AddCell().Value = issue.Field
			row.AddCell().Value = issue.Message
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "qc: save report %s", path)
	}
	return nil
}
