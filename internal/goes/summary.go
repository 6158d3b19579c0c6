package goes

import (
	"errors"
	"time"
)

// ErrNoSamples is returned when aggregation is attempted over an empty
// sample slice. Aggregating zero points is undefined, so the condition
// surfaces to the caller instead of defaulting silently.
var ErrNoSamples = errors.New("no flux samples available")

// Summary describes a sample slice: its time extent, the freshest
// measurement, and the strongest measurement. Time fields marshal as
// RFC 3339 UTC, so an exported summary round-trips losslessly.
type Summary struct {
	StartTimeUTC time.Time `json:"start_time_utc"`
	EndTimeUTC   time.Time `json:"end_time_utc"`
	SampleCount  int       `json:"sample_count"`
	CurrentFlux  float64   `json:"current_flux"`
	CurrentClass string    `json:"current_class"`
	MaxFlux      float64   `json:"max_flux"`
	MaxClass     string    `json:"max_class"`
}

// Summarize aggregates a time-ordered sample slice.
func Summarize(samples []FluxSample) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, ErrNoSamples
	}

	current := samples[len(samples)-1].Flux
	maxFlux := samples[0].Flux
	for _, s := range samples[1:] {
		if s.Flux > maxFlux {
			maxFlux = s.Flux
		}
	}

	return Summary{
		StartTimeUTC: samples[0].TimeUTC,
		EndTimeUTC:   samples[len(samples)-1].TimeUTC,
		SampleCount:  len(samples),
		CurrentFlux:  current,
		CurrentClass: Classify(current),
		MaxFlux:      maxFlux,
		MaxClass:     Classify(maxFlux),
	}, nil
}
