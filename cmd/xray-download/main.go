// xray-download - Download GOES X-ray flux snapshots from NOAA SWPC
//
// Data sources:
//   - NOAA SWPC GOES primary satellite: 1-day, 6-hour and 7-day X-ray flux
//   - NOAA SWPC GOES secondary satellite: 1-day X-ray flux
//
// Build: CGO_ENABLED=0 go build -ldflags="-s -w" -o build/xray-download ./cmd/xray-download

package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/pgzip"

	"github.com/dwbower/goes-xray-tools/internal/common"
	"github.com/dwbower/goes-xray-tools/internal/swpc"
)

// Version can be overridden at build time via -ldflags
var Version = "1.0.0"

// DataSource defines one GOES X-ray feed product
type DataSource struct {
	Name     string
	URL      string
	Filename string
	Desc     string
}

var sources = []DataSource{
	{
		Name:     "primary_1day",
		URL:      swpc.PrimaryXrays1Day,
		Filename: "xrays-primary-1-day.json",
		Desc:     "Primary GOES X-ray flux, 1-minute averages, last day",
	},
	{
		Name:     "primary_6hour",
		URL:      swpc.PrimaryXrays6Hour,
		Filename: "xrays-primary-6-hour.json",
		Desc:     "Primary GOES X-ray flux, 6-hour rolling window",
	},
	{
		Name:     "primary_7day",
		URL:      swpc.PrimaryXrays7Day,
		Filename: "xrays-primary-7-day.json",
		Desc:     "Primary GOES X-ray flux, last 7 days",
	},
	{
		Name:     "secondary_1day",
		URL:      swpc.SecondaryXrays1Day,
		Filename: "xrays-secondary-1-day.json",
		Desc:     "Secondary GOES X-ray flux, 1-minute averages, last day",
	},
}

// downloadFile fetches a feed snapshot to destPath via a temp file and an
// atomic rename. With compress set, the body is gzipped on the way down
// and ".gz" is appended to the destination.
func downloadFile(url, destPath string, timeout time.Duration, compress bool) error {
	client := &http.Client{
		Timeout: timeout,
	}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("HTTP GET failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	if compress {
		destPath += ".gz"
	}

	tmpPath := destPath + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create file failed: %w", err)
	}

	var n int64
	if compress {
		gz := pgzip.NewWriter(f)
		n, err = io.Copy(gz, resp.Body)
		if cerr := gz.Close(); err == nil {
			err = cerr
		}
	} else {
		n, err = io.Copy(f, resp.Body)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("download failed: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename failed: %w", err)
	}

	fmt.Printf("  Downloaded %s (%d bytes)\n", filepath.Base(destPath), n)
	return nil
}

func main() {
	cfg := common.DefaultConfig()

	destDir := flag.String("dest", cfg.SnapshotDir(), "Destination directory")
	timeout := flag.Duration("timeout", 60*time.Second, "HTTP timeout per download")
	listSources := flag.Bool("list", false, "List available data sources")
	source := flag.String("source", "all", "Source to download (or 'all')")
	compress := flag.Bool("gzip", false, "Gzip snapshots while downloading")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "xray-download v%s - GOES X-Ray Snapshot Downloader\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Downloads GOES X-ray flux products from NOAA SWPC.\n\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nData Sources:\n")
		for _, s := range sources {
			fmt.Fprintf(os.Stderr, "  %-15s %s\n", s.Name, s.Desc)
		}
	}

	flag.Parse()

	if *listSources {
		fmt.Printf("Available GOES X-ray sources:\n\n")
		for _, s := range sources {
			fmt.Printf("  %-15s %s\n", s.Name, s.Desc)
			fmt.Printf("                  URL: %s\n", s.URL)
			fmt.Printf("                  File: %s\n\n", s.Filename)
		}
		return
	}

	fmt.Println("=========================================================")
	fmt.Printf("X-Ray Download v%s\n", Version)
	fmt.Println("=========================================================")
	fmt.Printf("Destination: %s\n", *destDir)
	fmt.Printf("Timeout:     %v\n", *timeout)
	fmt.Printf("Gzip:        %v\n", *compress)
	fmt.Println()

	if err := os.MkdirAll(*destDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot create directory: %v\n", err)
		os.Exit(1)
	}

	startTime := time.Now()
	downloaded := 0
	failed := 0

	for _, src := range sources {
		if *source != "all" && *source != src.Name {
			continue
		}

		destPath := filepath.Join(*destDir, src.Filename)
		fmt.Printf("[%s] Downloading from %s...\n", src.Name, src.URL)

		if err := downloadFile(src.URL, destPath, *timeout, *compress); err != nil {
			fmt.Printf("  ERROR: %v\n", err)
			failed++
		} else {
			downloaded++
		}
	}

	elapsed := time.Since(startTime)

	fmt.Println()
	fmt.Println("=========================================================")
	fmt.Println("Download Summary")
	fmt.Println("=========================================================")
	fmt.Printf("Downloaded: %d files\n", downloaded)
	fmt.Printf("Failed:     %d files\n", failed)
	fmt.Printf("Elapsed:    %v\n", elapsed.Round(time.Millisecond))
	fmt.Println("=========================================================")

	if failed > 0 {
		os.Exit(1)
	}
}
