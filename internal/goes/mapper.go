package goes

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Field names used by the SWPC GOES X-ray JSON products.
const (
	fieldEnergy       = "energy"
	fieldTimeTag      = "time_tag"
	fieldFlux         = "flux"
	fieldObservedFlux = "observed_flux"
)

// MapRecords converts raw feed rows for one energy band into a
// time-ordered sample sequence. Rows whose energy field does not exactly
// match the requested band are ignored; retained rows whose timestamp or
// flux cannot be read are dropped, and the second return value counts
// those drops. The result is stably sorted ascending by timestamp, so
// rows sharing a timestamp keep their input order. An empty result is
// not an error.
func MapRecords(rows []Record, energy string) ([]FluxSample, int) {
	samples := make([]FluxSample, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		if strings.TrimSpace(asString(row[fieldEnergy])) != energy {
			continue
		}

		t, err := ParseTime(asString(row[fieldTimeTag]))
		if err != nil {
			dropped++
			continue
		}
		flux, ok := asFloat(row[fieldFlux])
		if !ok {
			dropped++
			continue
		}
		obs, ok := asFloat(row[fieldObservedFlux])
		if !ok {
			obs = flux
		}

		samples = append(samples, FluxSample{TimeUTC: t, Flux: flux, ObservedFlux: obs})
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].TimeUTC.Before(samples[j].TimeUTC)
	})
	return samples, dropped
}

// asString renders a loosely-typed field as a string, "" for absent.
func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(v)
	}
}

// asFloat coerces a loosely-typed field to float64. The feed usually
// serves numbers but has been observed serving numeric strings.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
