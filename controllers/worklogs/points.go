package worklogs

import "time"

// DurationSeconds returns the elapsed whole seconds between start and end,
// truncating fractional seconds and clamping clock-skew negatives to zero so
// a bad start_time can never inflate the bonus.
func DurationSeconds(start, end time.Time) int64 {
	secs := int64(end.Sub(start) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}

// PointsEarned computes the reward for a completed task: the base points,
// plus one bonus increment for every second finished under the standard time.
func PointsEarned(pointsBase, bonusPerSecondSaved float64, standardTimeSeconds, durationSeconds int64) float64 {
	if durationSeconds >= standardTimeSeconds {
		return pointsBase
	}
	secondsSaved := standardTimeSeconds - durationSeconds
	return pointsBase + float64(secondsSaved)*bonusPerSecondSaved
}
