// Package swpc retrieves GOES X-ray flux products from the NOAA Space
// Weather Prediction Center, or from local snapshot files written by
// xray-download.
package swpc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/dwbower/goes-xray-tools/internal/goes"
)

// GOES X-ray flux products. Each serves one-minute averages for both XRS
// channels as a JSON array of records.
const (
	PrimaryXrays1Day   = "https://services.swpc.noaa.gov/json/goes/primary/xrays-1-day.json"
	PrimaryXrays6Hour  = "https://services.swpc.noaa.gov/json/goes/primary/xrays-6-hour.json"
	PrimaryXrays7Day   = "https://services.swpc.noaa.gov/json/goes/primary/xrays-7-day.json"
	SecondaryXrays1Day = "https://services.swpc.noaa.gov/json/goes/secondary/xrays-1-day.json"
)

// FeedError reports a response that is not a JSON array of records.
// The service occasionally serves an error object in place of the
// product; that must not reach the mapper.
type FeedError struct {
	Source string
	Err    error
}

func (e *FeedError) Error() string {
	return fmt.Sprintf("malformed feed from %s: %v", e.Source, e.Err)
}

func (e *FeedError) Unwrap() error { return e.Err }

// Client fetches feed products over HTTP.
type Client struct {
	http *http.Client
}

// NewClient returns a Client with the given per-request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// Fetch downloads and decodes one feed URL.
func (c *Client) Fetch(ctx context.Context, url string) ([]goes.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP GET failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}
	return decode(url, resp.Body)
}

// ReadFile decodes a local feed snapshot. Files ending in ".gz" are
// decompressed transparently.
func ReadFile(path string) ([]goes.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip open %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}
	return decode(path, r)
}

func decode(source string, r io.Reader) ([]goes.Record, error) {
	var rows []goes.Record
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, &FeedError{Source: source, Err: err}
	}
	return rows, nil
}
