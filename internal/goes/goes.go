// Package goes processes GOES satellite soft X-ray flux measurements.
// It converts the loosely-typed rows of the NOAA SWPC JSON feeds into a
// typed, time-ordered series and derives flare classifications, trailing
// windows, summaries, and alert signals from that series. The package is
// pure computation: fetching the feed and writing exports live elsewhere.
package goes

import "time"

// DefaultEnergyBand is the long-wavelength GOES XRS channel used for
// flare classification.
const DefaultEnergyBand = "0.1-0.8nm"

// Record is one loosely-typed row of a feed response, as decoded from JSON.
type Record map[string]any

// FluxSample is a single validated X-ray flux measurement.
// Instances are built once by MapRecords and never mutated.
type FluxSample struct {
	TimeUTC      time.Time
	Flux         float64 // W/m^2
	ObservedFlux float64 // W/m^2, defaults to Flux when the feed omits it
}
