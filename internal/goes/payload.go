package goes

import "time"

// Entry is one exported sample together with its derived flare class.
type Entry struct {
	TimeUTC      time.Time `json:"time_utc"`
	Flux         float64   `json:"flux"`
	ObservedFlux float64   `json:"observed_flux"`
	FlareClass   string    `json:"flare_class"`
}

// Payload is the sink-agnostic result of one monitor run.
type Payload struct {
	Source  string  `json:"source"`
	Energy  string  `json:"energy"`
	Summary Summary `json:"summary"`
	Entries []Entry `json:"entries"`
}

// BuildPayload assembles the structured output for a windowed slice.
// Summarize's empty-input error propagates unchanged.
func BuildPayload(source, energy string, samples []FluxSample) (Payload, error) {
	sum, err := Summarize(samples)
	if err != nil {
		return Payload{}, err
	}

	entries := make([]Entry, len(samples))
	for i, s := range samples {
		entries[i] = Entry{
			TimeUTC:      s.TimeUTC,
			Flux:         s.Flux,
			ObservedFlux: s.ObservedFlux,
			FlareClass:   Classify(s.Flux),
		}
	}

	return Payload{Source: source, Energy: energy, Summary: sum, Entries: entries}, nil
}
