package common

import (
	"fmt"
	"sync/atomic"
)

// PipelineStats holds atomic counters for one monitor run. The mapper's
// lossy-recovery policy silently drops malformed records; these counters
// keep the drops visible to operators.
type PipelineStats struct {
	fetched  atomic.Uint64
	kept     atomic.Uint64
	dropped  atomic.Uint64
	windowed atomic.Uint64
}

// AddFetched records rows received from the provider before filtering.
func (s *PipelineStats) AddFetched(n uint64) { s.fetched.Add(n) }

// AddKept records samples that survived validation and mapping.
func (s *PipelineStats) AddKept(n uint64) { s.kept.Add(n) }

// AddDropped records in-band rows discarded for parse failures.
func (s *PipelineStats) AddDropped(n uint64) { s.dropped.Add(n) }

// AddWindowed records samples inside the trailing window.
func (s *PipelineStats) AddWindowed(n uint64) { s.windowed.Add(n) }

func (s *PipelineStats) Fetched() uint64  { return s.fetched.Load() }
func (s *PipelineStats) Kept() uint64     { return s.kept.Load() }
func (s *PipelineStats) Dropped() uint64  { return s.dropped.Load() }
func (s *PipelineStats) Windowed() uint64 { return s.windowed.Load() }

// Line renders the counters as a single banner line.
func (s *PipelineStats) Line() string {
	return fmt.Sprintf("Fetched: %d | Kept: %d | Dropped: %d | Windowed: %d",
		s.Fetched(), s.Kept(), s.Dropped(), s.Windowed())
}
