package analyzer

import "time"

// SetClock replaces the analyzer clock for testing.
func (a *Analyzer) SetClock(now time.Time) {
	a.now = func() time.Time { return now }
}

// SampledBetweenness exports sampledBetweenness for testing.
var SampledBetweenness = sampledBetweenness

// ToUndirected exports toUndirected for testing.
var ToUndirected = toUndirected
