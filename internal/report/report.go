// Package report renders the analysis summary as the human-readable
// <Results> block. The layout (tabs, three decimal places, versioned rating
// line) is a frozen output contract consumed by downstream tooling.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vladglv/Performance-Tools/internal/analyzer"
)

// Write renders the summary to w in the legacy report layout.
func Write(w io.Writer, s *analyzer.Summary) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "<Results>\n")
	fmt.Fprintf(&buf, "\tStutter margin\t: %.3f [ms]\n", s.StutterMarginMS)
	fmt.Fprintf(&buf, "\n\tFrame Rate Min\t: %.3f [fps]\n", s.FPSMin)
	fmt.Fprintf(&buf, "\tFrame Rate Max\t: %.3f [fps]\n", s.FPSMax)
	fmt.Fprintf(&buf, "\tFrame Rate Avg Normal [N]\t: %.3f [fps]\n", s.FPSAvg)
	fmt.Fprintf(&buf, "\tFrame Rate Avg Smooth [S]\t: %.3f [fps]\n", s.FPSAvgSmooth)
	fmt.Fprintf(&buf, "\tFrame Rate Avg Diff[N, S]\t: %.3f%%\n", s.FPSAvgDiffPct)
	fmt.Fprintf(&buf, "\n\tStutter samples\t: %d\n", s.StutterSamples)
	fmt.Fprintf(&buf, "\tSmooth samples\t: %d\n", s.SmoothSamples)
	fmt.Fprintf(&buf, "\tTotal samples\t: %d\n", s.TotalSamples)
	fmt.Fprintf(&buf, "\tExtra time\t: %.3f [ms]\n", s.ExtraTimeMS)
	fmt.Fprintf(&buf, "\tTotal time\t: %.3f [ms]\n", s.TotalTimeMS)
	fmt.Fprintf(&buf, "\n\tOverall smoothness\t: %.3f%%\n", s.SmoothnessPct)
	fmt.Fprintf(&buf, "\tOverall stutter\t\t: %.3f%%\n", s.StutterPct)
	fmt.Fprintf(&buf, "\tOverall extra time\t: %.3f%%\n", s.ExtraTimePct)
	fmt.Fprintf(&buf, "\tOverall rating<v:%d>\t: %s, %d of %d\n",
		s.Rating.Version, s.Rating.Label, s.Rating.Score, s.Rating.MaxScore)

	_, err := w.Write(buf.Bytes())
	return err
}
