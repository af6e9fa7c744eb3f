package testutil

import (
	"sync"
	"testing"

	"github.com/wordpace/wordpace/internal/progress"
)

// CallRecord records a single reporter call.
type CallRecord struct {
	Method string
	Poll   int
}

// BreakRecord is a break start together with the poll it followed.
type BreakRecord struct {
	Break     progress.Break
	AfterPoll int
}

// RecordingReporter records every call made to it. Safe for concurrent use.
type RecordingReporter struct {
	mu      sync.Mutex
	calls   []CallRecord
	reports []progress.PollReport
	breaks  []BreakRecord
	ticks   []int
	summary *progress.Summary
}

// NewRecordingReporter returns an empty recorder.
func NewRecordingReporter() *RecordingReporter {
	return &RecordingReporter{}
}

func (r *RecordingReporter) Report(p progress.PollReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, p)
	r.calls = append(r.calls, CallRecord{Method: "Report", Poll: p.Poll})
}

func (r *RecordingReporter) BreakStarted(b progress.Break) {
	r.mu.Lock()
	defer r.mu.Unlock()
	poll := r.lastPoll()
	r.breaks = append(r.breaks, BreakRecord{Break: b, AfterPoll: poll})
	r.calls = append(r.calls, CallRecord{Method: "BreakStarted", Poll: poll})
}

func (r *RecordingReporter) BreakTick(remaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks = append(r.ticks, remaining)
	r.calls = append(r.calls, CallRecord{Method: "BreakTick", Poll: r.lastPoll()})
}

func (r *RecordingReporter) Summary(s progress.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summary = &s
	r.calls = append(r.calls, CallRecord{Method: "Summary", Poll: r.lastPoll()})
}

// lastPoll returns the poll number of the latest report; callers hold mu.
func (r *RecordingReporter) lastPoll() int {
	if n := len(r.reports); n > 0 {
		return r.reports[n-1].Poll
	}
	return 0
}

// Reports returns every poll report in order.
func (r *RecordingReporter) Reports() []progress.PollReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]progress.PollReport, len(r.reports))
	copy(out, r.reports)
	return out
}

// Breaks returns every break start in order.
func (r *RecordingReporter) Breaks() []BreakRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]BreakRecord, len(r.breaks))
	copy(out, r.breaks)
	return out
}

// Ticks returns the remaining-minutes value of every countdown tick.
func (r *RecordingReporter) Ticks() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.ticks))
	copy(out, r.ticks)
	return out
}

// SummaryReport returns the summary, or nil if none was reported.
func (r *RecordingReporter) SummaryReport() *progress.Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.summary
}

// GetCalls returns all recorded calls.
func (r *RecordingReporter) GetCalls() []CallRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]CallRecord, len(r.calls))
	copy(out, r.calls)
	return out
}

// GetCallsByMethod returns calls filtered by method name.
func (r *RecordingReporter) GetCallsByMethod(method string) []CallRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []CallRecord
	for _, call := range r.calls {
		if call.Method == method {
			result = append(result, call)
		}
	}
	return result
}

// AssertCallCount verifies the number of calls to a method.
func (r *RecordingReporter) AssertCallCount(t *testing.T, method string, expected int) {
	t.Helper()

	calls := r.GetCallsByMethod(method)
	if len(calls) != expected {
		t.Errorf("expected %s to be called %d times, got %d", method, expected, len(calls))
	}
}

// AssertNotCalled verifies that a method was NOT called.
func (r *RecordingReporter) AssertNotCalled(t *testing.T, method string) {
	t.Helper()

	calls := r.GetCallsByMethod(method)
	if len(calls) > 0 {
		t.Errorf("expected %s to not be called, but was called %d times", method, len(calls))
	}
}

// Reset clears all recorded calls.
func (r *RecordingReporter) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
	r.reports = nil
	r.breaks = nil
	r.ticks = nil
	r.summary = nil
}
