package goes

import "time"

// LastHours returns the trailing slice of samples whose timestamps fall
// in the closed interval [anchor-hours, anchor], where anchor is the
// latest sample's timestamp. Anchoring to the data instead of the wall
// clock keeps the window meaningful when the feed lags.
//
// Samples must already be sorted ascending by time. hours == 0 degrades
// to the samples sharing the anchor timestamp; negative hours yields an
// empty slice.
func LastHours(samples []FluxSample, hours float64) []FluxSample {
	if len(samples) == 0 {
		return nil
	}

	anchor := samples[len(samples)-1].TimeUTC
	start := anchor.Add(-time.Duration(hours * float64(time.Hour)))

	out := make([]FluxSample, 0, len(samples))
	for _, s := range samples {
		if !s.TimeUTC.Before(start) && !s.TimeUTC.After(anchor) {
			out = append(out, s)
		}
	}
	return out
}
