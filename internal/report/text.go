package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"waypoint-tour-solver/internal/domain"
)

// TextReporter prints the human-readable run report. Write errors are sticky:
// the first one is kept and returned by Flush.
type TextReporter struct {
	w   *bufio.Writer
	err error
}

func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: bufio.NewWriter(w)}
}

func (r *TextReporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Flush writes any buffered output and returns the first write error.
func (r *TextReporter) Flush() error {
	if r.err != nil {
		return r.err
	}
	r.err = r.w.Flush()
	return r.err
}

func (r *TextReporter) Coordinates(wps []domain.Waypoint) {
	r.printf("\nConverted coordinates:\n\n")
	for _, wp := range wps {
		r.printf("N %.6f W %.6f\n", wp.Lat, wp.Lon)
	}
}

func (r *TextReporter) Total(total int) {
	r.printf("\nTotal permutations: %d\n\n", total)
}

// Progress implements ports.ProgressObserver. Lines are flushed immediately.
func (r *TextReporter) Progress(done, total int, percent float64) {
	r.printf("Checking paths: %06.3f%% complete\n", percent)
	_ = r.Flush()
}

func (r *TextReporter) CountMismatch(got, want int) {
	r.printf("ERROR: permutation count mismatch\n")
	r.printf("%d != %d\n", got, want)
}

func (r *TextReporter) Best(c domain.Candidate) {
	r.printf("\nThe shortest path has been determined:\n")
	r.printf("Path %d: %s with distance %.6f\n", c.Index, FormatStops(c.Stops), c.Distance)
}

func (r *TextReporter) Ranked(rows []domain.RankedSolution) {
	r.printf("\nTop Shortest Paths:\n")
	for _, row := range rows {
		r.printf("Path: %07d %s Dist: %.6f°\t%s %s\n",
			row.Index, FormatStops(row.Stops), row.Distance, row.Solution.Lat, row.Solution.Lon)
	}
}

func (r *TextReporter) Histogram(h Histogram, width int) {
	r.printf("\nPath Length Histogram:\n")
	if r.err != nil {
		return
	}
	r.err = h.Render(r.w, width)
}

// FormatStops renders a stop ordering as "(1, 2, 3)".
func FormatStops(stops []int) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, s := range stops {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(s))
	}
	b.WriteByte(')')
	return b.String()
}
