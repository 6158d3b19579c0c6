package export

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/parquet-go/parquet-go"

	"github.com/dwbower/goes-xray-tools/internal/goes"
)

func testSamples() []goes.FluxSample {
	base := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)
	return []goes.FluxSample{
		{TimeUTC: base, Flux: 1.23e-6, ObservedFlux: 1.3e-6},
		{TimeUTC: base.Add(time.Minute), Flux: 2.5e-5, ObservedFlux: 2.5e-5},
		{TimeUTC: base.Add(2 * time.Minute), Flux: 2e-4, ObservedFlux: 1.9e-4},
	}
}

// checkDetailLines verifies header and per-line structure, and that the
// timestamps re-parse to the original UTC instants (lossless round-trip).
func checkDetailLines(t *testing.T, lines []string, samples []goes.FluxSample) {
	t.Helper()

	if len(lines) != len(samples)+1 {
		t.Fatalf("line count: want %d, got %d", len(samples)+1, len(lines))
	}
	if lines[0] != DetailHeader {
		t.Fatalf("header: want %q, got %q", DetailHeader, lines[0])
	}

	for i, s := range samples {
		fields := strings.Split(lines[i+1], ",")
		if len(fields) != 4 {
			t.Fatalf("line %d: want 4 fields, got %d (%q)", i+1, len(fields), lines[i+1])
		}

		got, err := goes.ParseTime(fields[0])
		if err != nil {
			t.Fatalf("line %d: timestamp does not re-parse: %v", i+1, err)
		}
		if !got.Equal(s.TimeUTC) {
			t.Errorf("line %d: round-trip lost the instant: want %v, got %v", i+1, s.TimeUTC, got)
		}

		flux, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			t.Fatalf("line %d: flux does not parse: %v", i+1, err)
		}
		if flux != s.Flux {
			t.Errorf("line %d: flux: want %g, got %g", i+1, s.Flux, flux)
		}
		if !strings.Contains(fields[1], "e") {
			t.Errorf("line %d: flux not in exponential notation: %q", i+1, fields[1])
		}

		if want := goes.Classify(s.Flux); fields[3] != want {
			t.Errorf("line %d: flare class: want %q, got %q", i+1, want, fields[3])
		}
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestWriteDetailCSV(t *testing.T) {
	t.Parallel()

	samples := testSamples()
	path := filepath.Join(t.TempDir(), "detail.csv")

	if err := WriteDetailCSV(samples, path); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	checkDetailLines(t, readLines(t, path), samples)

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after a successful write")
	}
}

func TestWriteDetailCSVGzip(t *testing.T) {
	t.Parallel()

	samples := testSamples()
	path := filepath.Join(t.TempDir(), "detail.csv.gz")

	if err := WriteDetailCSV(samples, path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("not a gzip stream: %v", err)
	}
	defer gz.Close()

	var lines []string
	sc := bufio.NewScanner(gz)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	checkDetailLines(t, lines, samples)
}

func TestWritePayloadJSON(t *testing.T) {
	t.Parallel()

	samples := testSamples()
	payload, err := goes.BuildPayload("https://example.test/xrays.json", goes.DefaultEnergyBand, samples)
	if err != nil {
		t.Fatalf("payload: %v", err)
	}

	path := filepath.Join(t.TempDir(), "payload.json")
	if err := WritePayloadJSON(payload, path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var decoded goes.Payload
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("payload file does not decode: %v", err)
	}
	if decoded.Source != payload.Source || decoded.Energy != payload.Energy {
		t.Errorf("identity fields lost: %+v", decoded)
	}
	if len(decoded.Entries) != len(samples) {
		t.Fatalf("entries: want %d, got %d", len(samples), len(decoded.Entries))
	}
	if !decoded.Summary.EndTimeUTC.Equal(payload.Summary.EndTimeUTC) {
		t.Errorf("summary end time lost: want %v, got %v",
			payload.Summary.EndTimeUTC, decoded.Summary.EndTimeUTC)
	}
}

func TestWriteDetailParquet(t *testing.T) {
	t.Parallel()

	samples := testSamples()
	path := filepath.Join(t.TempDir(), "detail.parquet")

	if err := WriteDetailParquet(samples, path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	rows, err := parquet.ReadFile[detailRow](path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != len(samples) {
		t.Fatalf("rows: want %d, got %d", len(samples), len(rows))
	}
	for i, s := range samples {
		if rows[i].TimeUTC != s.TimeUTC.UnixMilli() {
			t.Errorf("row %d time: want %d, got %d", i, s.TimeUTC.UnixMilli(), rows[i].TimeUTC)
		}
		if rows[i].Flux != s.Flux {
			t.Errorf("row %d flux: want %g, got %g", i, s.Flux, rows[i].Flux)
		}
		if want := goes.Classify(s.Flux); rows[i].FlareClass != want {
			t.Errorf("row %d class: want %q, got %q", i, want, rows[i].FlareClass)
		}
	}
}

func TestWriteDetailCSVEmptyWindow(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := WriteDetailCSV(nil, path); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	lines := readLines(t, path)
	if len(lines) != 1 || lines[0] != DetailHeader {
		t.Errorf("empty export must be header only, got %q", lines)
	}
}
