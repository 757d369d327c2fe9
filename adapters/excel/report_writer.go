package excel

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"delistats/domain/stats"
	"delistats/internal/errors"
	"delistats/ports"
)

// ReportWriter implements ports.ReportWriterPort by writing the run report
// to an xlsx workbook: a Summary sheet with the computed statistics and a
// Sample sheet with the raw observations.
type ReportWriter struct {
	filePath string
}

var _ ports.ReportWriterPort = (*ReportWriter)(nil)

// NewReportWriter creates a writer targeting the given file path
func NewReportWriter(filePath string) *ReportWriter {
	return &ReportWriter{filePath: filePath}
}

// Write saves the report workbook
func (w *ReportWriter) Write(ctx context.Context, report *stats.RunReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return errors.Wrap(err, "failed to rename summary sheet")
	}

	summary := [][]interface{}{
		{"Run ID", report.RunID.String()},
		{"Generated At", report.GeneratedAt.Time().Format("2006-01-02 15:04:05")},
		{"Population Mean", report.Spec.Mean},
		{"Population StdDev", report.Spec.StdDev},
		{"Sample Size", report.Spec.Count},
		{"Seed", report.Spec.Seed},
		{"Sample Mean", report.Statistics.Mean},
		{"Sample StdDev", report.Statistics.StdDev},
		{"Confidence Level", report.Interval.Level},
		{"CI Lower", report.Interval.Lower},
		{"CI Upper", report.Interval.Upper},
		{"Hypothesized Mean", report.Test.HypothesizedMean},
		{"t-Statistic", report.Test.Statistic},
		{"p-Value", report.Test.PValue},
		{"Decision", report.Test.Decision()},
		{"Warnings", joinWarnings(report.Test.Warnings)},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Wrap(err, "failed to compute cell coordinates")
		}
		if err := f.SetSheetRow("Summary", cell, &row); err != nil {
			return errors.Wrapf(err, "failed to write summary row %d", i+1)
		}
	}

	if _, err := f.NewSheet("Sample"); err != nil {
		return errors.Wrap(err, "failed to create sample sheet")
	}
	if err := f.SetCellValue("Sample", "A1", "delivery_time"); err != nil {
		return errors.Wrap(err, "failed to write sample header")
	}
	for i, v := range report.Sample.Values() {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetCellValue("Sample", cell, v); err != nil {
			return errors.Wrapf(err, "failed to write sample value %d", i)
		}
	}

	if err := f.SaveAs(w.filePath); err != nil {
		return errors.Wrapf(err, "failed to save workbook to %s", w.filePath)
	}
	return nil
}

// joinWarnings renders warning codes as a single cell value
func joinWarnings(warnings []stats.WarningCode) string {
	if len(warnings) == 0 {
		return "none"
	}
	codes := make([]string, len(warnings))
	for i, w := range warnings {
		codes[i] = string(w)
	}
	return strings.Join(codes, ", ")
}
