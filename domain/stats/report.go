package stats

import (
	"delistats/domain/core"
)

// RunReport captures the complete output of one analysis run.
// All fields are set once when the run finishes; nothing mutates after.
type RunReport struct {
	RunID       core.RunID           `json:"run_id"`
	GeneratedAt core.Timestamp       `json:"generated_at"`
	Spec        GeneratorSpec        `json:"spec"`
	Statistics  SampleStatistics     `json:"statistics"`
	Interval    ConfidenceInterval   `json:"interval"`
	Test        HypothesisTestResult `json:"test"`
	Sample      Sample               `json:"-"`
}
