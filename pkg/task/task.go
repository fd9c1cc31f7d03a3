// Package task runs the simulated background jobs of a session: each job
// waits a fixed delay, then applies its effect unless cancelled first.
package task

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vyaas/pkg/metrics"
)

type State string

const (
	Pending  State = "pending"
	Done     State = "done"
	Canceled State = "canceled"
	Failed   State = "failed"
)

var ErrClosed = errors.New("task group closed")

type Info struct {
	ID         string     `json:"id"`
	Kind       string     `json:"kind"`
	State      State      `json:"state"`
	Error      string     `json:"error,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

type entry struct {
	info   Info
	cancel context.CancelFunc
}

// Retention is how long a finished task stays queryable.
const Retention = 10 * time.Minute

// Group owns a set of delayed tasks. CancelAll stops the outstanding ones
// and leaves the group usable; Close also refuses new work.
type Group struct {
	delay time.Duration
	log   *zap.Logger
	now   func() time.Time

	mu     sync.Mutex
	wg     sync.WaitGroup
	tasks  map[string]*entry
	closed bool
}

func NewGroup(delay time.Duration, log *zap.Logger) *Group {
	return &Group{delay: delay, log: log, now: time.Now, tasks: map[string]*entry{}}
}

// Schedule runs fn after the group delay and returns the task id.
// fn is not called if the task is cancelled before the delay elapses.
func (g *Group) Schedule(kind string, fn func(ctx context.Context) error) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return "", ErrClosed
	}
	g.pruneLocked()
	ctx, cancel := context.WithCancel(context.Background())
	e := &entry{
		info:   Info{ID: uuid.NewString(), Kind: kind, State: Pending, CreatedAt: g.now()},
		cancel: cancel,
	}
	g.tasks[e.info.ID] = e
	g.wg.Add(1)
	go g.run(ctx, e, fn)
	return e.info.ID, nil
}

func (g *Group) run(ctx context.Context, e *entry, fn func(context.Context) error) {
	defer g.wg.Done()
	defer e.cancel()

	t := time.NewTimer(g.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		g.finish(e, Canceled, nil)
		return
	case <-t.C:
	}
	if ctx.Err() != nil {
		g.finish(e, Canceled, nil)
		return
	}
	if err := fn(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			g.finish(e, Canceled, nil)
			return
		}
		g.finish(e, Failed, err)
		return
	}
	g.finish(e, Done, nil)
}

func (g *Group) finish(e *entry, st State, err error) {
	g.mu.Lock()
	now := g.now()
	e.info.State = st
	e.info.FinishedAt = &now
	if err != nil {
		e.info.Error = err.Error()
	}
	g.mu.Unlock()

	metrics.TasksTotal.WithLabelValues(e.info.Kind, string(st)).Inc()
	if err != nil {
		g.log.Warn("task failed", zap.String("id", e.info.ID), zap.String("kind", e.info.Kind), zap.Error(err))
		return
	}
	g.log.Debug("task finished", zap.String("id", e.info.ID), zap.String("kind", e.info.Kind), zap.String("state", string(st)))
}

func (g *Group) Status(id string) (Info, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.tasks[id]
	if !ok {
		return Info{}, false
	}
	return e.info, true
}

// pruneLocked forgets tasks that finished more than Retention ago.
func (g *Group) pruneLocked() {
	cutoff := g.now().Add(-Retention)
	for id, e := range g.tasks {
		if e.info.FinishedAt != nil && e.info.FinishedAt.Before(cutoff) {
			delete(g.tasks, id)
		}
	}
}

// Pending counts tasks that have not finished.
func (g *Group) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pruneLocked()
	n := 0
	for _, e := range g.tasks {
		if e.info.State == Pending {
			n++
		}
	}
	return n
}

// CancelAll cancels every outstanding task and waits for them to settle.
func (g *Group) CancelAll() {
	g.mu.Lock()
	for _, e := range g.tasks {
		e.cancel()
	}
	g.mu.Unlock()
	g.wg.Wait()
}

func (g *Group) Close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
	g.CancelAll()
}
