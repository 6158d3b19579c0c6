package goes

// IsXFlare reports whether a flux magnitude reaches the X-class threshold.
func IsXFlare(flux float64) bool { return flux >= XClassThreshold }

// Evaluate reports whether the strongest sample in the slice reaches the
// X-class threshold. An empty slice never alerts. Delivering the alert
// to an operator is the caller's concern, not this package's.
func Evaluate(samples []FluxSample) bool {
	for _, s := range samples {
		if IsXFlare(s.Flux) {
			return true
		}
	}
	return false
}
