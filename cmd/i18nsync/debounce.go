package main

import (
	"slices"
	"time"
)

// debouncer coalesces bursts of events per file: a file settles once no
// event touched it for the quiet period.
type debouncer struct {
	quiet time.Duration
	last  map[string]time.Time
}

func newDebouncer(quiet time.Duration) *debouncer {
	return &debouncer{quiet: quiet, last: make(map[string]time.Time)}
}

func (d *debouncer) touch(name string, at time.Time) {
	d.last[name] = at
}

// settled removes and returns, sorted, the files quiet since at least d.quiet.
func (d *debouncer) settled(now time.Time) []string {
	var out []string
	for name, at := range d.last {
		if now.Sub(at) >= d.quiet {
			out = append(out, name)
			delete(d.last, name)
		}
	}
	slices.Sort(out)
	return out
}
