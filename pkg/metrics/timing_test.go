package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestRecordStats(t *testing.T) {
	m := newTimingMetric("test_op")
	m.Record(10 * time.Millisecond)
	m.Record(30 * time.Millisecond)
	m.Record(20 * time.Millisecond)

	if got := m.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if got := m.MinNs(); got != (10 * time.Millisecond).Nanoseconds() {
		t.Errorf("MinNs() = %d", got)
	}
	if got := m.MaxNs(); got != (30 * time.Millisecond).Nanoseconds() {
		t.Errorf("MaxNs() = %d", got)
	}
	if got := m.AvgNs(); got != (20 * time.Millisecond).Nanoseconds() {
		t.Errorf("AvgNs() = %d", got)
	}

	stats := m.Stats()
	if stats.Name != "test_op" || stats.Count != 3 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.TotalMs != 60 {
		t.Errorf("TotalMs = %v, want 60", stats.TotalMs)
	}
}

func TestRecordConcurrent(t *testing.T) {
	m := newTimingMetric("concurrent_op")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Record(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if got := m.Count(); got != 800 {
		t.Errorf("Count() = %d, want 800", got)
	}
	if got := m.TotalNs(); got != 800*time.Millisecond.Nanoseconds() {
		t.Errorf("TotalNs() = %d", got)
	}
}

func TestTimerRecords(t *testing.T) {
	m := newTimingMetric("timed_op")
	done := Timer(m)
	done()
	if got := m.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
}

func TestDisabledSkipsRecording(t *testing.T) {
	SetEnabled(false)
	defer SetEnabled(true)

	m := newTimingMetric("disabled_op")
	m.Record(time.Second)
	Timer(m)()
	if got := m.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0 while disabled", got)
	}
}

func TestResetAll(t *testing.T) {
	Parse.Record(time.Millisecond)
	ResetAll()
	if got := Parse.Count(); got != 0 {
		t.Errorf("Count() after ResetAll = %d", got)
	}
	if stats := AllTimingStats(); len(stats) != 0 {
		t.Errorf("AllTimingStats() after ResetAll = %v", stats)
	}
}
