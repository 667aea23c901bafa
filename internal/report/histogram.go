package report

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
)

// MaxBins caps the bin count so the histogram fits a terminal.
const MaxBins = 60

// Histogram is a fixed-width binning of tour lengths.
type Histogram struct {
	Min    float64
	Width  float64
	Counts []int
}

// NewHistogram bins xs like numpy's bins="auto", capped at MaxBins: the
// narrower of the Freedman-Diaconis and Sturges widths, falling back to
// Sturges when the interquartile range is zero. When the rule asks for more
// than MaxBins bins the span is split into MaxBins equal bins instead.
func NewHistogram(xs []float64) Histogram {
	if len(xs) == 0 {
		return Histogram{}
	}

	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	span := hi - lo
	if span == 0 {
		return Histogram{Min: lo, Width: 0, Counts: []int{len(sorted)}}
	}

	n := float64(len(sorted))
	width := span / (math.Log2(n) + 1)
	iqr := quantile(sorted, 0.75) - quantile(sorted, 0.25)
	if fd := 2 * iqr * math.Pow(n, -1.0/3); fd > 0 {
		width = math.Min(width, fd)
	}

	bins := int(math.Ceil(span / width))
	bins = max(1, min(bins, MaxBins))
	width = span / float64(bins)

	counts := make([]int, bins)
	for _, x := range sorted {
		i := int((x - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}

	return Histogram{Min: lo, Width: width, Counts: counts}
}

// quantile interpolates linearly between closest ranks of a sorted slice.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	i := int(pos)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(i)
	return sorted[i] + frac*(sorted[i+1]-sorted[i])
}

// Render draws one bar per bin, scaled so the fullest bin is width cells.
func (h Histogram) Render(w io.Writer, width int) error {
	peak := 0
	for _, c := range h.Counts {
		peak = max(peak, c)
	}
	if peak == 0 || width <= 0 {
		return nil
	}

	for i, c := range h.Counts {
		lo := h.Min + float64(i)*h.Width
		bar := strings.Repeat("#", c*width/peak)
		if _, err := fmt.Fprintf(w, "%.4f-%.4f | %-*s %d\n", lo, lo+h.Width, width, bar, c); err != nil {
			return err
		}
	}
	return nil
}
