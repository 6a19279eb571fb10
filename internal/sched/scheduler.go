// Package sched provides a deterministic virtual-time scheduler.
// Time only moves when the owner calls Advance, so game logic built on it
// runs identically under the Bubble Tea tick loop and in tests.
package sched

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled task. The zero Handle never refers to a task.
type Handle uint64

// task is a single scheduled callback.
type task struct {
	handle Handle
	at     time.Duration // Due time on the virtual clock
	period time.Duration // Zero for one-shot tasks
	seq    uint64        // Tie-breaker: earlier scheduling fires first
	fn     func()
	index  int
	dead   bool
}

// taskQueue is a min-heap ordered by (at, seq).
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler runs one-shot and repeating callbacks against a virtual clock.
// It is not safe for concurrent use; all calls are expected from a single
// event loop (the Bubble Tea update goroutine).
type Scheduler struct {
	now    time.Duration
	seq    uint64
	next   Handle
	queue  taskQueue
	active map[Handle]*task
}

// New creates a scheduler with its clock at zero.
func New() *Scheduler {
	return &Scheduler{
		active: make(map[Handle]*task),
	}
}

// Now returns the current virtual time.
// While a callback runs, Now reports that task's due time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, d after the current virtual time.
// Non-positive delays fire on the next Advance.
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	return s.schedule(d, 0, fn)
}

// Every schedules fn to run every d, first firing d from now.
// A non-positive period is treated as a one-shot.
func (s *Scheduler) Every(d time.Duration, fn func()) Handle {
	if d <= 0 {
		return s.schedule(d, 0, fn)
	}
	return s.schedule(d, d, fn)
}

func (s *Scheduler) schedule(d, period time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	s.next++
	s.seq++
	t := &task{
		handle: s.next,
		at:     s.now + d,
		period: period,
		seq:    s.seq,
		fn:     fn,
	}
	heap.Push(&s.queue, t)
	s.active[t.handle] = t
	return t.handle
}

// Cancel stops a pending task. It returns false if the handle was unknown,
// already fired (one-shot) or already cancelled.
// Cancellation is synchronous: once Cancel returns, the callback never runs.
func (s *Scheduler) Cancel(h Handle) bool {
	t, ok := s.active[h]
	if !ok {
		return false
	}
	delete(s.active, h)
	t.dead = true
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// Active reports whether h refers to a task that will still fire.
func (s *Scheduler) Active(h Handle) bool {
	_, ok := s.active[h]
	return ok
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.active)
}

// Advance moves the clock forward by d, running every task that falls due
// in order. Returns the number of callbacks that ran.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := s.now + d
	fired := 0

	for s.queue.Len() > 0 {
		t := s.queue[0]
		if t.at > target {
			break
		}
		heap.Pop(&s.queue)
		if t.dead {
			continue
		}

		s.now = t.at
		if t.period > 0 {
			// Re-arm first so the callback can cancel its own repetition
			s.seq++
			t.at += t.period
			t.seq = s.seq
			heap.Push(&s.queue, t)
		} else {
			delete(s.active, t.handle)
		}

		t.fn()
		fired++
	}

	s.now = target
	return fired
}
