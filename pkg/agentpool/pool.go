// Package agentpool limits how many coding-agent jobs of each type may run
// at once. Acquires past the limit queue as waiters ordered by priority and
// age; a release hands its slot to the best waiter directly.
package agentpool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jervis-ai/jervis-core/pkg/config"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

// Acquire priorities. Lower wins.
const (
	PriorityForeground = 0
	PriorityBackground = 10
)

// ErrPoolFull indicates no slot became available before the wait timeout.
var ErrPoolFull = errors.New("agent pool full")

// ErrUnknownAgentType indicates the agent type has no configured limit.
var ErrUnknownAgentType = errors.New("unknown agent type")

type waiter struct {
	priority int
	queuedAt time.Time
	signal   chan struct{}
}

// Pool is the per-type concurrency limiter plus the active-job registry used
// for metrics and stuck-job detection.
type Pool struct {
	cfg *config.AgentPoolConfig

	mu      sync.Mutex
	counts  map[models.AgentType]int
	waiters map[models.AgentType][]*waiter
	jobs    map[string]models.ActiveJob
}

// New creates an agent pool from the configured per-type limits.
func New(cfg *config.AgentPoolConfig) *Pool {
	return &Pool{
		cfg:     cfg,
		counts:  make(map[models.AgentType]int),
		waiters: make(map[models.AgentType][]*waiter),
		jobs:    make(map[string]models.ActiveJob),
	}
}

// Acquire claims a slot for the agent type, blocking up to the configured
// wait timeout when the type is at its limit. Waiters are served in
// (priority, queued_at) order. Returns ErrPoolFull on timeout.
func (p *Pool) Acquire(ctx context.Context, agentType models.AgentType, priority int) error {
	limit, ok := p.cfg.MaxConcurrent[string(agentType)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAgentType, agentType)
	}

	p.mu.Lock()
	if p.counts[agentType] < limit {
		p.counts[agentType]++
		p.mu.Unlock()
		return nil
	}

	w := &waiter{
		priority: priority,
		queuedAt: time.Now(),
		signal:   make(chan struct{}, 1),
	}
	p.waiters[agentType] = append(p.waiters[agentType], w)
	sortWaiters(p.waiters[agentType])
	queued := len(p.waiters[agentType])
	p.mu.Unlock()

	slog.Info("Agent pool at limit, queued waiter",
		"agent_type", agentType,
		"priority", priority,
		"queue_depth", queued)

	timer := time.NewTimer(p.cfg.WaitTimeout)
	defer timer.Stop()

	select {
	case <-w.signal:
		// Slot transferred by a releaser; the count already includes us.
		return nil
	case <-ctx.Done():
		if p.abandonWaiter(agentType, w) {
			return ctx.Err()
		}
		return nil
	case <-timer.C:
		if p.abandonWaiter(agentType, w) {
			return fmt.Errorf("%w: %s after %s", ErrPoolFull, agentType, p.cfg.WaitTimeout)
		}
		return nil
	}
}

// abandonWaiter removes the waiter from the queue. Returns false when a
// releaser already popped and signalled it, in which case the caller holds
// the slot and must not fail the acquire.
func (p *Pool) abandonWaiter(agentType models.AgentType, w *waiter) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	list := p.waiters[agentType]
	for i, cand := range list {
		if cand == w {
			p.waiters[agentType] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Release returns a slot. If waiters exist the slot transfers to the best
// one without touching the counter; otherwise the counter decrements.
func (p *Pool) Release(agentType models.AgentType) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if list := p.waiters[agentType]; len(list) > 0 {
		next := list[0]
		p.waiters[agentType] = list[1:]
		next.signal <- struct{}{}
		return
	}
	if p.counts[agentType] > 0 {
		p.counts[agentType]--
	} else {
		slog.Warn("Agent pool release without matching acquire", "agent_type", agentType)
	}
}

// MarkStarted registers a dispatched job for tracking.
func (p *Pool) MarkStarted(jobName string, agentType models.AgentType, taskID, threadID string, timeout time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jobs[jobName] = models.ActiveJob{
		JobName:        jobName,
		AgentType:      agentType,
		TaskID:         taskID,
		ThreadID:       threadID,
		StartedAt:      time.Now(),
		TimeoutSeconds: int(timeout.Seconds()),
	}
}

// MarkCompleted removes a tracked job.
func (p *Pool) MarkCompleted(jobName, status string) {
	p.mu.Lock()
	job, ok := p.jobs[jobName]
	delete(p.jobs, jobName)
	p.mu.Unlock()
	if ok {
		slog.Info("Coding-agent job finished",
			"job_name", jobName,
			"agent_type", job.AgentType,
			"status", status,
			"runtime", time.Since(job.StartedAt).Round(time.Second).String())
	}
}

// ActiveJobs returns a snapshot of tracked jobs.
func (p *Pool) ActiveJobs() []models.ActiveJob {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.ActiveJob, 0, len(p.jobs))
	for _, job := range p.jobs {
		out = append(out, job)
	}
	return out
}

// StuckJobs returns tracked jobs that exceeded their timeout by the
// configured multiplier.
func (p *Pool) StuckJobs(now time.Time) []models.ActiveJob {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []models.ActiveJob
	for _, job := range p.jobs {
		if job.Stuck(now, p.cfg.StuckJobTimeoutMultiplier) {
			out = append(out, job)
		}
	}
	return out
}

// TimeoutFor returns the configured job timeout for the agent type.
func (p *Pool) TimeoutFor(agentType models.AgentType) time.Duration {
	if d, ok := p.cfg.AgentTimeouts[string(agentType)]; ok {
		return d
	}
	return 20 * time.Minute
}

// TypeStatus describes one agent type's slot usage.
type TypeStatus struct {
	InUse   int `json:"in_use"`
	Limit   int `json:"limit"`
	Waiting int `json:"waiting"`
}

// Status returns per-type slot usage for the status endpoint.
func (p *Pool) Status() map[string]TypeStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]TypeStatus, len(p.cfg.MaxConcurrent))
	for agentType, limit := range p.cfg.MaxConcurrent {
		out[agentType] = TypeStatus{
			InUse:   p.counts[models.AgentType(agentType)],
			Limit:   limit,
			Waiting: len(p.waiters[models.AgentType(agentType)]),
		}
	}
	return out
}

func sortWaiters(list []*waiter) {
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && less(list[j], list[j-1]); j-- {
			list[j], list[j-1] = list[j-1], list[j]
		}
	}
}

func less(a, b *waiter) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.queuedAt.Before(b.queuedAt)
}
