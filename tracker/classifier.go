package tracker

import "time"

// Classifier decides whether a completed membership counted as a genuine
// invite or a short-lived one
type Classifier struct {
	// Threshold is the minimum membership duration for a departure to
	// keep counting as genuine. Exactly the threshold is genuine.
	Threshold time.Duration
}

// ShortLived reports whether a membership from joinedAt to leftAt fell
// under the threshold
func (c Classifier) ShortLived(joinedAt, leftAt time.Time) bool {
	return leftAt.Sub(joinedAt) < c.Threshold
}
