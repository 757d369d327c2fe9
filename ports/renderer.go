package ports

import (
	"io"

	"delistats/domain/stats"
)

// RendererPort draws a histogram of the sample values with a marker at
// the sample mean. The core only supplies the sample and the computed
// mean; layout decisions belong to the adapter.
type RendererPort interface {
	RenderHistogram(w io.Writer, sample stats.Sample, mean float64) error
}
