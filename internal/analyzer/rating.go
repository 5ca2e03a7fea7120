package analyzer

import "math"

// SRVersion identifies the rating bucket definitions. Ratings computed with
// different versions must never be compared, so the version is carried
// alongside every rating.
const SRVersion = 3

// Clamp bounds for the overall stutter percentage before bucketing.
const (
	srMin = 0.124
	srMax = 100.1
)

// srVerbal maps a log2 bucket of the overall stutter percentage to a verbal
// rating. Index 0 corresponds to the lowest stutter bucket. The table is a
// frozen scoring contract; changing it requires bumping SRVersion.
var srVerbal = [...]string{
	"Practically Impossible",
	"Perfect",
	"Excellent",
	"Very Good",
	"Good",
	"Average",
	"Below Average",
	"Mediocre",
	"Atrocious",
	"Abysmal",
}

// Rating is the verbal smoothness rating with its numeric score and the
// version of the bucket table that produced it.
type Rating struct {
	Label    string
	Score    int
	MaxScore int
	Version  int
}

// RateSmoothness derives the rating for an overall stutter percentage. The
// percentage is clamped into [srMin, srMax] and bucketed on a log2 scale, so
// the rating degrades one step each time the stutter percentage doubles.
func RateSmoothness(stutterPct float64) Rating {
	clamped := math.Max(math.Min(stutterPct, srMax), srMin)

	rank := int(math.Ceil(math.Log2(clamped))) + 3
	if rank < 0 {
		rank = 0
	}
	if rank > len(srVerbal)-1 {
		rank = len(srVerbal) - 1
	}

	return Rating{
		Label:    srVerbal[rank],
		Score:    len(srVerbal) - 1 - rank,
		MaxScore: len(srVerbal) - 1,
		Version:  SRVersion,
	}
}
