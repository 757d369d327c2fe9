package excel

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"delistats/domain/core"
	"delistats/domain/stats"
)

func testReport() *stats.RunReport {
	return &stats.RunReport{
		RunID:       core.RunID(core.NewID()),
		GeneratedAt: core.Now(),
		Spec:        stats.GeneratorSpec{Mean: 3.5, StdDev: 0.5, Count: 5, Seed: 42},
		Statistics:  stats.SampleStatistics{Mean: 3.41, StdDev: 0.45, N: 5},
		Interval:    stats.MustNewConfidenceInterval(3.24, 3.57, 0.95),
		Test: stats.HypothesisTestResult{
			Statistic:        -1.145,
			PValue:           0.262,
			HypothesizedMean: 3.5,
			RejectNull:       false,
			Warnings:         []stats.WarningCode{stats.WarningLowN},
		},
		Sample: stats.NewSample([]float64{3.2, 3.3, 3.4, 3.5, 3.6}),
	}
}

func TestReportWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	report := testReport()

	err := NewReportWriter(path).Write(context.Background(), report)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Summary")
	assert.Contains(t, sheets, "Sample")

	decision, err := f.GetCellValue("Summary", "B15")
	require.NoError(t, err)
	assert.Equal(t, "fail to reject H0", decision)

	warnings, err := f.GetCellValue("Summary", "B16")
	require.NoError(t, err)
	assert.Equal(t, "LOW_N", warnings)

	header, err := f.GetCellValue("Sample", "A1")
	require.NoError(t, err)
	assert.Equal(t, "delivery_time", header)

	first, err := f.GetCellValue("Sample", "A2")
	require.NoError(t, err)
	assert.Equal(t, "3.2", first)
}

func TestJoinWarnings(t *testing.T) {
	assert.Equal(t, "none", joinWarnings(nil))
	assert.Equal(t, "ZERO_VARIANCE, LOW_N",
		joinWarnings([]stats.WarningCode{stats.WarningZeroVariance, stats.WarningLowN}))
}
