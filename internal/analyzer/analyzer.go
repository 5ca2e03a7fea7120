// Package analyzer derives frame-to-frame timing statistics from a frame
// timing trace. It consumes an ordered sequence of cumulative timestamps,
// classifies each interval as smooth or stuttering against a configurable
// margin, and produces per-frame derived records plus an aggregate summary
// with a versioned smoothness rating.
package analyzer

import (
	"math"

	"github.com/vladglv/Performance-Tools/internal/errors"
)

// Range of accepted stutter margin values. The interval is open on both ends.
const (
	StutterMarginMin = 0.10
	StutterMarginMax = 10.1
)

// Sample is one row of the input trace: a frame index and the cumulative
// timestamp at which that frame was presented.
type Sample struct {
	Index  int
	TimeMS float64
}

// FrameRecord carries the derived metrics for one frame interval. The first
// sample of a trace has no predecessor and produces no record.
type FrameRecord struct {
	FrameTimeMS  float64
	FrameRateFPS float64
	FrameDeltaMS float64
	ExtraTimeMS  float64
	Stutter      bool
}

// Summary aggregates the whole analysis run.
type Summary struct {
	StutterMarginMS float64

	FPSMin       float64
	FPSMax       float64
	FPSAvg       float64
	FPSAvgSmooth float64
	// Percentage divergence between the smoothed and raw averages.
	FPSAvgDiffPct float64

	StutterSamples int
	SmoothSamples  int
	TotalSamples   int

	ExtraTimeMS float64
	TotalTimeMS float64

	SmoothnessPct float64
	StutterPct    float64
	ExtraTimePct  float64

	Rating Rating
}

// runningStats accumulates the fold state for one analysis pass. It is
// scoped to a single Analyze call and never shared.
type runningStats struct {
	stutterSamples int
	smoothSamples  int
	extraTotalMS   float64
	fpsMin         float64
	fpsMax         float64
	fpsAvg         float64
	fpsAvgSmooth   float64
}

// movingAverage recomputes an incremental mean including a new sample x,
// where n is the count of samples already folded in. Both the raw and the
// stutter-discounted averages use this same formula.
func movingAverage(avg, x float64, n int) float64 {
	return (x + float64(n)*avg) / float64(n+1)
}

// ValidateStutterMargin rejects margins outside the open interval
// ]StutterMarginMin, StutterMarginMax[. Callers must validate the margin
// before opening any files.
func ValidateStutterMargin(marginMS float64) error {
	if marginMS <= StutterMarginMin || marginMS >= StutterMarginMax {
		return errors.NewMarginOutOfRangeError(marginMS, StutterMarginMin, StutterMarginMax)
	}
	return nil
}

// Analyze walks consecutive sample pairs in order and derives one FrameRecord
// per pair together with the aggregate Summary. The computation is a single
// sequential fold: each record depends on the previous frame time and the
// running accumulators.
//
// A non-positive frame time (duplicate or decreasing timestamp) aborts the
// pass with a NON_MONOTONIC_TIMESTAMP error naming the offending frame.
func Analyze(samples []Sample, marginMS float64) ([]FrameRecord, *Summary, error) {
	if len(samples) < 2 {
		return nil, nil, errors.NewInsufficientDataError(len(samples))
	}

	records := make([]FrameRecord, 0, len(samples)-1)
	var stats runningStats
	prevFrameTime := 0.0

	for i := 1; i < len(samples); i++ {
		prev := samples[i-1]
		curr := samples[i]

		frameTime := curr.TimeMS - prev.TimeMS
		if frameTime <= 0 {
			return nil, nil, errors.NewNonMonotonicError(curr.Index, frameTime)
		}

		frameRate := 1000.0 / frameTime

		// n is the zero-based index of this derived record
		n := i - 1

		// The first derived record has no earlier frame time to diff
		// against; its delta is zero by definition.
		frameDelta := 0.0
		if n > 0 {
			frameDelta = frameTime - prevFrameTime
		}

		deviation := math.Abs(frameDelta) - marginMS
		extraTime := math.Max(0, deviation)
		stutter := deviation > 0

		if n == 0 {
			stats.fpsMin = frameRate
			stats.fpsMax = frameRate
		} else {
			stats.fpsMin = math.Min(stats.fpsMin, frameRate)
			stats.fpsMax = math.Max(stats.fpsMax, frameRate)
		}
		stats.fpsAvg = movingAverage(stats.fpsAvg, frameRate, n)

		// The smoothed average folds in 0 fps for stutter frames but keeps
		// the same denominator as the raw average.
		smoothRate := frameRate
		if stutter {
			smoothRate = 0.0
		}
		stats.fpsAvgSmooth = movingAverage(stats.fpsAvgSmooth, smoothRate, n)

		if stutter {
			stats.stutterSamples++
			stats.extraTotalMS += deviation
		} else {
			stats.smoothSamples++
		}

		records = append(records, FrameRecord{
			FrameTimeMS:  frameTime,
			FrameRateFPS: frameRate,
			FrameDeltaMS: frameDelta,
			ExtraTimeMS:  extraTime,
			Stutter:      stutter,
		})

		prevFrameTime = frameTime
	}

	totalTime := samples[len(samples)-1].TimeMS
	if totalTime <= 0 {
		return nil, nil, errors.NewInternalError("total elapsed time is zero")
	}

	total := stats.stutterSamples + stats.smoothSamples
	summary := &Summary{
		StutterMarginMS: marginMS,
		FPSMin:          stats.fpsMin,
		FPSMax:          stats.fpsMax,
		FPSAvg:          stats.fpsAvg,
		FPSAvgSmooth:    stats.fpsAvgSmooth,
		FPSAvgDiffPct:   (stats.fpsAvgSmooth/stats.fpsAvg - 1.0) * 100.0,
		StutterSamples:  stats.stutterSamples,
		SmoothSamples:   stats.smoothSamples,
		TotalSamples:    total,
		ExtraTimeMS:     stats.extraTotalMS,
		TotalTimeMS:     totalTime,
		SmoothnessPct:   float64(stats.smoothSamples) * 100.0 / float64(total),
		StutterPct:      float64(stats.stutterSamples) * 100.0 / float64(total),
		ExtraTimePct:    stats.extraTotalMS * 100.0 / totalTime,
	}
	summary.Rating = RateSmoothness(summary.StutterPct)

	return records, summary, nil
}
