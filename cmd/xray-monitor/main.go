// xray-monitor - GOES X-ray flux monitor
//
// Fetches the NOAA SWPC GOES X-ray flux feed (or reads a local snapshot),
// restricts it to one energy band, windows the series to the trailing N
// hours anchored at the freshest sample, and emits a summary plus CSV,
// JSON and Parquet detail exports. Exits 2 when the window contains an
// X-class flare so a wrapper can deliver the alert.
//
// Build: CGO_ENABLED=0 go build -ldflags="-s -w" -o build/xray-monitor ./cmd/xray-monitor

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/dwbower/goes-xray-tools/internal/common"
	"github.com/dwbower/goes-xray-tools/internal/export"
	"github.com/dwbower/goes-xray-tools/internal/goes"
	"github.com/dwbower/goes-xray-tools/internal/logger"
	"github.com/dwbower/goes-xray-tools/internal/swpc"
)

// Version can be overridden at build time via -ldflags
var Version = "1.0.0"

const defaultWindowHours = 2.0

// exitAlert is the exit code signalling an X-class flare in the window.
const exitAlert = 2

func main() {
	cfg := common.DefaultConfig()

	configPath := flag.String("config", "", "Optional YAML config file")
	url := flag.String("url", "", "Feed URL (default: primary 1-day product)")
	input := flag.String("input", "", "Local snapshot file (.json or .json.gz) instead of a URL fetch")
	energy := flag.String("energy", "", "Energy band filter (default: 0.1-0.8nm)")
	hours := flag.Float64("hours", 0, "Trailing window in hours (default: 2)")
	csvPath := flag.String("csv", "", "Detail export path (.csv, or .csv.gz for gzip)")
	jsonPath := flag.String("json", "", "Payload export path (.json)")
	parquetPath := flag.String("parquet", "", "Detail export path (.parquet)")
	timeout := flag.Duration("timeout", 30*time.Second, "HTTP timeout for the feed fetch")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "xray-monitor v%s - GOES X-Ray Flux Monitor\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Summarizes the trailing window of the GOES X-ray flux feed.\n\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	log := logger.Get(*logLevel)

	v := viper.New()
	v.SetDefault("feed.url", swpc.PrimaryXrays1Day)
	v.SetDefault("feed.energy", goes.DefaultEnergyBand)
	v.SetDefault("window.hours", defaultWindowHours)
	v.SetDefault("export.csv", "")
	v.SetDefault("export.json", "")
	v.SetDefault("export.parquet", "")

	if *configPath != "" {
		v.SetConfigFile(*configPath)
		if err := v.ReadInConfig(); err != nil {
			log.Fatalw("error reading config", "path", *configPath, "err", err)
		}
	}

	// Flags override the config file.
	if *url != "" {
		v.Set("feed.url", *url)
	}
	if *energy != "" {
		v.Set("feed.energy", *energy)
	}
	if *hours != 0 {
		v.Set("window.hours", *hours)
	}
	if *csvPath != "" {
		v.Set("export.csv", *csvPath)
	}
	if *jsonPath != "" {
		v.Set("export.json", *jsonPath)
	}
	if *parquetPath != "" {
		v.Set("export.parquet", *parquetPath)
	}

	feedURL := v.GetString("feed.url")
	band := v.GetString("feed.energy")
	windowHours := v.GetFloat64("window.hours")

	fmt.Println("=========================================================")
	fmt.Printf("X-Ray Monitor v%s\n", Version)
	fmt.Println("=========================================================")

	startTime := time.Now()
	stats := &common.PipelineStats{}

	// Fetch: local snapshot wins over the network when both are given.
	var (
		rows   []goes.Record
		source string
		err    error
	)
	if *input != "" {
		source = *input
		log.Infow("reading snapshot", "path", source)
		rows, err = swpc.ReadFile(source)
	} else {
		source = feedURL
		log.Infow("fetching feed", "url", source)
		client := swpc.NewClient(*timeout)
		rows, err = client.Fetch(context.Background(), source)
	}
	if err != nil {
		log.Fatalw("feed unavailable", "source", source, "err", err)
	}
	stats.AddFetched(uint64(len(rows)))

	samples, dropped := goes.MapRecords(rows, band)
	stats.AddKept(uint64(len(samples)))
	stats.AddDropped(uint64(dropped))
	if dropped > 0 {
		log.Warnw("dropped malformed records", "count", dropped)
	}
	if len(samples) == 0 {
		log.Fatalw("no samples for energy band", "energy", band, "rows", len(rows))
	}

	window := goes.LastHours(samples, windowHours)
	stats.AddWindowed(uint64(len(window)))

	payload, err := goes.BuildPayload(source, band, window)
	if err != nil {
		log.Fatalw("empty window", "hours", windowHours, "err", err)
	}

	pretty, err := json.MarshalIndent(payload.Summary, "", "  ")
	if err != nil {
		log.Fatalw("summary encoding failed", "err", err)
	}
	fmt.Println(string(pretty))

	if path := v.GetString("export.csv"); path != "" {
		if err := export.WriteDetailCSV(window, path); err != nil {
			log.Fatalw("csv export failed", "path", path, "err", err)
		}
		log.Infow("wrote detail export", "path", path, "samples", len(window))
	}
	if path := v.GetString("export.json"); path != "" {
		if err := export.WritePayloadJSON(payload, path); err != nil {
			log.Fatalw("json export failed", "path", path, "err", err)
		}
		log.Infow("wrote payload export", "path", path)
	}
	if path := v.GetString("export.parquet"); path != "" {
		if err := export.WriteDetailParquet(window, path); err != nil {
			log.Fatalw("parquet export failed", "path", path, "err", err)
		}
		log.Infow("wrote parquet export", "path", path, "samples", len(window))
	}

	elapsed := time.Since(startTime)

	fmt.Println("=========================================================")
	fmt.Println(stats.Line())
	fmt.Printf("Elapsed:    %v\n", elapsed.Round(time.Millisecond))
	fmt.Println("=========================================================")

	// Alert delivery (email, SMS, webhook) is a wrapper's job; the exit
	// code is the detection signal.
	if goes.Evaluate(window) {
		log.Warnw("X-class flare detected",
			"max_flux", payload.Summary.MaxFlux,
			"max_class", payload.Summary.MaxClass,
		)
		os.Exit(exitAlert)
	}
}
