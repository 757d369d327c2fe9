package ports

import (
	"context"

	"delistats/domain/stats"
)

// ReportWriterPort persists a run report to an external format (xlsx,
// HTML, ...). Writers are invoked after the pipeline completes and never
// mutate the report.
type ReportWriterPort interface {
	Write(ctx context.Context, report *stats.RunReport) error
}
