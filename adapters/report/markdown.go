package report

import (
	"fmt"
	"strings"

	"delistats/domain/stats"
)

// Markdown renders the run report as a markdown document. The same text
// feeds the HTML writer and can be pasted into research notes directly.
func Markdown(report *stats.RunReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Delivery time analysis %s\n\n", report.RunID)
	fmt.Fprintf(&b, "Generated at %s\n\n", report.GeneratedAt.Time().Format("2006-01-02 15:04:05"))

	b.WriteString("## Simulation\n\n")
	fmt.Fprintf(&b, "- Population mean: %.2f\n", report.Spec.Mean)
	fmt.Fprintf(&b, "- Population stddev: %.2f\n", report.Spec.StdDev)
	fmt.Fprintf(&b, "- Sample size: %d\n", report.Spec.Count)
	fmt.Fprintf(&b, "- Seed: %d\n\n", report.Spec.Seed)

	b.WriteString("## Results\n\n")
	fmt.Fprintf(&b, "| Statistic | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Sample mean | %.4f |\n", report.Statistics.Mean)
	fmt.Fprintf(&b, "| Sample stddev | %.4f |\n", report.Statistics.StdDev)
	fmt.Fprintf(&b, "| %.0f%% CI | (%.2f, %.2f) |\n",
		report.Interval.Level*100, report.Interval.Lower, report.Interval.Upper)
	fmt.Fprintf(&b, "| t-statistic | %.4f |\n", report.Test.Statistic)
	fmt.Fprintf(&b, "| p-value | %.4f |\n", report.Test.PValue)
	fmt.Fprintf(&b, "| Decision | %s |\n", report.Test.Decision())

	if len(report.Test.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range report.Test.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	return b.String()
}
