package goes

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		flux float64
		want string
	}{
		{"zero flux floors to A0.00", 0, "A0.00"},
		{"negative sentinel floors to A0.00", -1e-6, "A0.00"},
		{"exact X threshold", 1e-4, "X1.00"},
		{"mid C class", 5.5e-6, "C5.50"},
		{"B class", 2.5e-7, "B2.50"},
		{"M class", 3.3e-5, "M3.30"},
		{"exact A threshold", 1e-8, "A1.00"},
		{"sub-A rounds up at two decimals", 9.99e-9, "A1.00"},
		{"sub-A renders below 1.00", 5e-9, "A0.50"},
		{"no upper bound on X", 2e-3, "X20.00"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tc.flux); got != tc.want {
				t.Errorf("Classify(%g): want %q, got %q", tc.flux, tc.want, got)
			}
		})
	}
}

func TestScaleIsOrderedCopy(t *testing.T) {
	t.Parallel()

	scale := Scale()
	if len(scale) != 5 {
		t.Fatalf("scale length: want 5, got %d", len(scale))
	}
	for i := 1; i < len(scale); i++ {
		if scale[i].LowerBound <= scale[i-1].LowerBound {
			t.Errorf("scale not strictly increasing at %d: %g <= %g",
				i, scale[i].LowerBound, scale[i-1].LowerBound)
		}
	}
	if scale[len(scale)-1].LowerBound != XClassThreshold {
		t.Errorf("X lower bound: want %g, got %g", XClassThreshold, scale[len(scale)-1].LowerBound)
	}

	// Mutating the copy must not leak into the process-wide table.
	scale[0].LowerBound = 1
	if Scale()[0].LowerBound != 1e-8 {
		t.Error("Scale() returned a view onto the shared table")
	}
}
