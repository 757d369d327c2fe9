package render

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"delistats/domain/stats"
	"delistats/internal/errors"
	"delistats/ports"
)

// HistogramRenderer draws a text histogram of sample values, one bin per
// line, with the bin containing the sample mean marked.
type HistogramRenderer struct {
	// Width is the bar length of the fullest bin, in characters
	Width int
}

var _ ports.RendererPort = (*HistogramRenderer)(nil)

// NewHistogramRenderer creates a renderer with the given maximum bar width
func NewHistogramRenderer(width int) *HistogramRenderer {
	if width < 1 {
		width = 40
	}
	return &HistogramRenderer{Width: width}
}

// RenderHistogram bins the sample with Sturges' rule and writes scaled
// bars to w. The mean is rendering input only; it is not recomputed here.
func (r *HistogramRenderer) RenderHistogram(w io.Writer, sample stats.Sample, mean float64) error {
	if sample.Len() < 1 {
		return errors.InsufficientData("histogram requires at least one observation")
	}

	values := sample.Values()
	sort.Float64s(values)

	min := floats.Min(values)
	max := floats.Max(values)

	if _, err := fmt.Fprintf(w, "sample histogram (n=%d)\n", sample.Len()); err != nil {
		return err
	}

	// Degenerate sample: every value identical, a single full-width bar
	if min == max {
		_, err := fmt.Fprintf(w, "  [%8.2f] %s %d  <- mean\n", min, strings.Repeat("#", r.Width), sample.Len())
		return err
	}

	bins := sturgesBins(sample.Len())
	dividers := make([]float64, bins+1)
	floats.Span(dividers, min, max)
	// stat.Histogram requires max < last divider
	dividers[len(dividers)-1] = math.Nextafter(max, math.Inf(1))

	counts := stat.Histogram(nil, dividers, values, nil)

	maxCount := floats.Max(counts)
	meanBin := binIndex(dividers, mean)

	for i, count := range counts {
		barLen := int(math.Round(count / maxCount * float64(r.Width)))
		line := fmt.Sprintf("  [%8.2f, %8.2f) %-*s %d",
			dividers[i], dividers[i+1], r.Width, strings.Repeat("#", barLen), int(count))
		if i == meanBin {
			line += "  <- mean"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// sturgesBins returns the Sturges bin count: 1 + ceil(log2 n)
func sturgesBins(n int) int {
	return 1 + int(math.Ceil(math.Log2(float64(n))))
}

// binIndex locates the bin holding v, or -1 when v falls outside the range
func binIndex(dividers []float64, v float64) int {
	for i := 0; i < len(dividers)-1; i++ {
		if dividers[i] <= v && v < dividers[i+1] {
			return i
		}
	}
	return -1
}
