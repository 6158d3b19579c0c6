package goes

import "fmt"

// FlareClass pairs a flare letter with the lower flux bound of that class.
type FlareClass struct {
	Label      string
	LowerBound float64 // W/m^2
}

// flareScale is the standard solar-flare magnitude scale, ordered weakest
// to strongest. Read-only after initialization.
var flareScale = []FlareClass{
	{"A", 1e-8},
	{"B", 1e-7},
	{"C", 1e-6},
	{"M", 1e-5},
	{"X", 1e-4},
}

// XClassThreshold is the lower flux bound of an X-class flare.
const XClassThreshold = 1e-4

// Scale returns a copy of the flare classification table.
func Scale() []FlareClass {
	out := make([]FlareClass, len(flareScale))
	copy(out, flareScale)
	return out
}

// Classify maps a flux magnitude to a flare class label such as "M1.50".
// Non-positive flux collapses to the "A0.00" floor. Positive flux below
// the A threshold yields an A label whose sub-level renders below 1.00;
// that is the intended arithmetic, not a defect.
func Classify(flux float64) string {
	if flux <= 0 {
		return "A0.00"
	}
	for i := len(flareScale) - 1; i >= 0; i-- {
		c := flareScale[i]
		if flux >= c.LowerBound {
			return fmt.Sprintf("%s%.2f", c.Label, flux/c.LowerBound)
		}
	}
	return fmt.Sprintf("A%.2f", flux/flareScale[0].LowerBound)
}
