// control/tracer.go
// Author: momentics <momentics@gmail.com>
//
// Tracer decorates a GlobalAllocator with operation counters and a bounded
// history of allocation failures.

package control

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/eapache/queue"
	"github.com/momentics/hioload-alloc/api"
	"go.uber.org/zap"
)

// Operation names used in FailureEvent.Op and metric keys.
const (
	OpAlloc       = "alloc"
	OpAllocZeroed = "alloc_zeroed"
	OpDealloc     = "dealloc"
	OpRealloc     = "realloc"
)

// FailureEvent records one request the wrapped allocator could not satisfy.
type FailureEvent struct {
	Op      string
	Size    uintptr
	Align   uintptr
	NewSize uintptr
	At      time.Time
}

// TracerStats is a snapshot of Tracer counters.
type TracerStats struct {
	Allocs       int64
	ZeroedAllocs int64
	Deallocs     int64
	Reallocs     int64
	Failures     int64
}

// Tracer implements api.GlobalAllocator on top of another allocator.
// Counting is lock-free; the failure history takes a mutex only on failure.
type Tracer struct {
	next api.GlobalAllocator

	allocs   atomic.Int64
	zeroed   atomic.Int64
	deallocs atomic.Int64
	reallocs atomic.Int64
	failures atomic.Int64

	logFailures atomic.Bool

	mu         sync.Mutex
	history    *queue.Queue
	historyCap int
}

var _ api.GlobalAllocator = (*Tracer)(nil)

// NewTracer wraps next. When cfg is non-nil the tracer reads
// KeyTracingHistory and KeyTracingLogFailures from it and follows reloads.
func NewTracer(next api.GlobalAllocator, cfg *ConfigStore) *Tracer {
	t := &Tracer{
		next:       next,
		history:    queue.New(),
		historyCap: DefaultTracingHistory,
	}
	t.logFailures.Store(DefaultTracingLogFailures)
	if cfg != nil {
		t.apply(cfg)
		cfg.OnReload(func() { t.apply(cfg) })
	}
	return t
}

func (t *Tracer) apply(cfg *ConfigStore) {
	n := cfg.Int(KeyTracingHistory, DefaultTracingHistory)
	logFailures := cfg.Bool(KeyTracingLogFailures, DefaultTracingLogFailures)

	t.mu.Lock()
	t.historyCap = n
	for t.history.Length() > n {
		t.history.Remove()
	}
	t.mu.Unlock()
	t.logFailures.Store(logFailures)

	Logger().Info("tracer configured",
		zap.Int("history", n),
		zap.Bool("log_failures", logFailures))
}

// Alloc forwards to the wrapped allocator.
func (t *Tracer) Alloc(layout api.Layout) unsafe.Pointer {
	t.allocs.Add(1)
	p := t.next.Alloc(layout)
	if p == nil {
		t.fail(OpAlloc, layout, 0)
	}
	return p
}

// AllocZeroed forwards to the wrapped allocator.
func (t *Tracer) AllocZeroed(layout api.Layout) unsafe.Pointer {
	t.zeroed.Add(1)
	p := t.next.AllocZeroed(layout)
	if p == nil {
		t.fail(OpAllocZeroed, layout, 0)
	}
	return p
}

// Dealloc forwards to the wrapped allocator.
func (t *Tracer) Dealloc(ptr unsafe.Pointer, layout api.Layout) {
	t.deallocs.Add(1)
	t.next.Dealloc(ptr, layout)
}

// Realloc forwards to the wrapped allocator.
func (t *Tracer) Realloc(ptr unsafe.Pointer, layout api.Layout, newSize uintptr) unsafe.Pointer {
	t.reallocs.Add(1)
	p := t.next.Realloc(ptr, layout, newSize)
	if p == nil {
		t.fail(OpRealloc, layout, newSize)
	}
	return p
}

func (t *Tracer) fail(op string, layout api.Layout, newSize uintptr) {
	t.failures.Add(1)
	ev := FailureEvent{
		Op:      op,
		Size:    layout.Size(),
		Align:   layout.Align(),
		NewSize: newSize,
		At:      time.Now(),
	}

	t.mu.Lock()
	if t.historyCap > 0 {
		if t.history.Length() >= t.historyCap {
			t.history.Remove()
		}
		t.history.Add(ev)
	}
	t.mu.Unlock()

	if t.logFailures.Load() {
		Logger().Debug("allocation failed",
			zap.String("op", op),
			zap.Uintptr("size", ev.Size),
			zap.Uintptr("align", ev.Align),
			zap.Uintptr("new_size", newSize))
	}
}

// Stats returns the current counters.
func (t *Tracer) Stats() TracerStats {
	return TracerStats{
		Allocs:       t.allocs.Load(),
		ZeroedAllocs: t.zeroed.Load(),
		Deallocs:     t.deallocs.Load(),
		Reallocs:     t.reallocs.Load(),
		Failures:     t.failures.Load(),
	}
}

// RecentFailures returns the retained failure events, oldest first.
func (t *Tracer) RecentFailures() []FailureEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]FailureEvent, t.history.Length())
	for i := range out {
		out[i] = t.history.Get(i).(FailureEvent)
	}
	return out
}

// Publish copies the counters into mr under the "heap." prefix.
func (t *Tracer) Publish(mr *MetricsRegistry) {
	s := t.Stats()
	mr.SetMany(map[string]any{
		"heap." + OpAlloc:       s.Allocs,
		"heap." + OpAllocZeroed: s.ZeroedAllocs,
		"heap." + OpDealloc:     s.Deallocs,
		"heap." + OpRealloc:     s.Reallocs,
		"heap.failures":         s.Failures,
	})
}

// RegisterProbes exposes the failure history through dp.
func (t *Tracer) RegisterProbes(dp *DebugProbes) {
	dp.RegisterProbe("heap.recent_failures", func() any {
		return t.RecentFailures()
	})
}
