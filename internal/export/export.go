// Package export writes monitor results to files: a delimited per-sample
// detail export, the structured JSON payload, and a Parquet copy of the
// detail rows. Every write goes through a temp file and an atomic rename
// so a crashed run never leaves a partial export behind.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/pgzip"
	"github.com/parquet-go/parquet-go"

	"github.com/dwbower/goes-xray-tools/internal/goes"
)

// DetailHeader is the first line of the delimited detail export.
const DetailHeader = "TIME(UTC),FLUX,OBSERVED_FLUX,FLARE_CLASS"

// WriteDetailCSV writes one line per sample, flux in exponential notation
// with fixed precision and timestamps in RFC 3339 so the instants
// round-trip exactly. A path ending in ".gz" is compressed with parallel
// gzip.
func WriteDetailCSV(samples []goes.FluxSample, path string) error {
	return writeAtomic(path, func(w io.Writer) error {
		if !strings.HasSuffix(path, ".gz") {
			return writeDetail(w, samples)
		}
		gz := pgzip.NewWriter(w)
		if err := writeDetail(gz, samples); err != nil {
			gz.Close()
			return err
		}
		return gz.Close()
	})
}

func writeDetail(w io.Writer, samples []goes.FluxSample) error {
	if _, err := fmt.Fprintln(w, DetailHeader); err != nil {
		return err
	}
	for _, s := range samples {
		_, err := fmt.Fprintf(w, "%s,%.10e,%.10e,%s\n",
			s.TimeUTC.Format(time.RFC3339Nano), s.Flux, s.ObservedFlux, goes.Classify(s.Flux))
		if err != nil {
			return err
		}
	}
	return nil
}

// WritePayloadJSON writes the structured payload, indented for humans.
func WritePayloadJSON(p goes.Payload, path string) error {
	return writeAtomic(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	})
}

// detailRow is the Parquet schema of the detail export. Timestamps are
// Unix milliseconds.
type detailRow struct {
	TimeUTC      int64   `parquet:"time_utc"`
	Flux         float64 `parquet:"flux"`
	ObservedFlux float64 `parquet:"observed_flux"`
	FlareClass   string  `parquet:"flare_class"`
}

// WriteDetailParquet writes the detail rows as a Parquet file.
func WriteDetailParquet(samples []goes.FluxSample, path string) error {
	rows := make([]detailRow, len(samples))
	for i, s := range samples {
		rows[i] = detailRow{
			TimeUTC:      s.TimeUTC.UnixMilli(),
			Flux:         s.Flux,
			ObservedFlux: s.ObservedFlux,
			FlareClass:   goes.Classify(s.Flux),
		}
	}

	return writeAtomic(path, func(w io.Writer) error {
		pw := parquet.NewGenericWriter[detailRow](w)
		if _, err := pw.Write(rows); err != nil {
			pw.Close()
			return err
		}
		return pw.Close()
	})
}

func writeAtomic(path string, fill func(io.Writer) error) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create file failed: %w", err)
	}
	if err := fill(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename failed: %w", err)
	}
	return nil
}
