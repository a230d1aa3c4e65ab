package main

import (
	"fmt"
	"io"
	"net/http"
	"slices"
	"sync"
	"time"
)

// TestStats contains aggregated burst statistics
type TestStats struct {
	mu            sync.Mutex
	total         int
	successful    int
	rejected      int // 404 Not enough balance
	failed        int
	responseTimes []time.Duration
	errorCounts   map[string]int
	totalTime     time.Duration
}

func newStats(total int) *TestStats {
	return &TestStats{
		total:         total,
		responseTimes: make([]time.Duration, 0, total),
		errorCounts:   make(map[string]int),
	}
}

func (s *TestStats) record(status int, elapsed time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.responseTimes = append(s.responseTimes, elapsed)
	switch {
	case err == nil:
		s.successful++
	case status == http.StatusNotFound:
		s.rejected++
	default:
		s.failed++
		s.errorCounts[err.Error()]++
	}
}

// percentile returns the p-th percentile of the recorded response times
func (s *TestStats) percentile(p int) time.Duration {
	if len(s.responseTimes) == 0 {
		return 0
	}
	sorted := slices.Clone(s.responseTimes)
	slices.Sort(sorted)
	idx := len(sorted) * p / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func (s *TestStats) print(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tps := 0.0
	if s.totalTime > 0 {
		tps = float64(s.total) / s.totalTime.Seconds()
	}

	fmt.Fprintln(w, "\n================= TEST RESULTS =================")
	fmt.Fprintf(w, "Total Requests:      %d\n", s.total)
	fmt.Fprintf(w, "Accepted Debits:     %d\n", s.successful)
	fmt.Fprintf(w, "Rejected (balance):  %d\n", s.rejected)
	fmt.Fprintf(w, "Failed Requests:     %d\n", s.failed)
	fmt.Fprintf(w, "Total Test Time:     %.2f seconds\n", s.totalTime.Seconds())
	fmt.Fprintf(w, "Throughput:          %.2f requests/s\n", tps)

	fmt.Fprintln(w, "\n----------------- RESPONSE TIMES -----------------")
	fmt.Fprintf(w, "P50 Response:        %v\n", s.percentile(50))
	fmt.Fprintf(w, "P90 Response:        %v\n", s.percentile(90))
	fmt.Fprintf(w, "P99 Response:        %v\n", s.percentile(99))

	if len(s.errorCounts) > 0 {
		fmt.Fprintln(w, "\n----------------- ERROR DISTRIBUTION -----------------")
		for msg, count := range s.errorCounts {
			fmt.Fprintf(w, "%-40s: %d\n", msg, count)
		}
	}
}
