// ============================================================================
// boole - Propositional Logic Toolkit
// ============================================================================
//
// Package:     health
// Description: Registry of named health checks with an aggregated report
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package health

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Status of a single check or of a whole report
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
	StatusUnknown   Status = "unknown"
)

// severity orders statuses for aggregation; unknown counts as degraded
func (s Status) severity() int {
	switch s {
	case StatusHealthy:
		return 0
	case StatusUnhealthy:
		return 2
	default:
		return 1
	}
}

// CheckResult is the outcome of one check. Duration and Timestamp are
// filled in by the registry.
type CheckResult struct {
	Name      string                 `json:"name"`
	Status    Status                 `json:"status"`
	Message   string                 `json:"message,omitempty"`
	Duration  time.Duration          `json:"duration"`
	Timestamp time.Time              `json:"timestamp"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Checker probes one component
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

// CheckFunc is the function form of Checker.Check
type CheckFunc func(ctx context.Context) CheckResult

type funcChecker struct {
	name string
	fn   CheckFunc
}

func (c funcChecker) Name() string                          { return c.name }
func (c funcChecker) Check(ctx context.Context) CheckResult { return c.fn(ctx) }

// NewChecker names fn
func NewChecker(name string, fn CheckFunc) Checker {
	return funcChecker{name: name, fn: fn}
}

// Registry holds the checks of one service
type Registry struct {
	service string
	version string
	started time.Time

	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewRegistry creates an empty registry for service at version
func NewRegistry(service, version string) *Registry {
	return &Registry{
		service:  service,
		version:  version,
		started:  time.Now(),
		checkers: make(map[string]Checker),
	}
}

// Register adds checker, replacing any checker of the same name
func (r *Registry) Register(checker Checker) {
	r.mu.Lock()
	r.checkers[checker.Name()] = checker
	r.mu.Unlock()
}

// RegisterFunc registers fn under name
func (r *Registry) RegisterFunc(name string, fn CheckFunc) {
	r.Register(NewChecker(name, fn))
}

// Unregister removes the checker called name
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	delete(r.checkers, name)
	r.mu.Unlock()
}

func (r *Registry) snapshot() []Checker {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Checker, 0, len(r.checkers))
	for _, c := range r.checkers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Check runs every check concurrently and reports them sorted by name.
// The report takes the worst status of its checks; an empty registry is
// healthy.
func (r *Registry) Check(ctx context.Context) *Report {
	checkers := r.snapshot()
	results := make([]CheckResult, len(checkers))

	var wg sync.WaitGroup
	wg.Add(len(checkers))
	for i := range checkers {
		go func(i int) {
			defer wg.Done()
			results[i] = run(ctx, checkers[i])
		}(i)
	}
	wg.Wait()

	status := StatusHealthy
	for _, res := range results {
		if res.Status.severity() > status.severity() {
			status = res.Status
		}
	}
	if status == StatusUnknown {
		status = StatusDegraded
	}

	return &Report{
		Service:   r.service,
		Version:   r.version,
		Status:    status,
		Uptime:    time.Since(r.started),
		Timestamp: time.Now(),
		Checks:    results,
	}
}

func run(ctx context.Context, c Checker) CheckResult {
	start := time.Now()
	res := c.Check(ctx)
	res.Duration = time.Since(start)
	res.Timestamp = time.Now()
	if res.Name == "" {
		res.Name = c.Name()
	}
	if res.Status == "" {
		res.Status = StatusUnknown
	}
	return res
}

// CheckWithTimeout runs Check under a fresh context bounded by timeout
func (r *Registry) CheckWithTimeout(timeout time.Duration) *Report {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return r.Check(ctx)
}

// Report aggregates the results of a registry run
type Report struct {
	Service   string        `json:"service"`
	Version   string        `json:"version"`
	Status    Status        `json:"status"`
	Uptime    time.Duration `json:"uptime"`
	Timestamp time.Time     `json:"timestamp"`
	Checks    []CheckResult `json:"checks"`
}

// Healthy reports whether every check passed
func (r *Report) Healthy() bool {
	return r.Status == StatusHealthy
}

// String summarizes the report on one line
func (r *Report) String() string {
	return fmt.Sprintf("%s %s: %s (%d checks, up %v)", r.Service, r.Version, r.Status, len(r.Checks), r.Uptime)
}

// ErrorCheck turns an error-returning probe into a checker: nil is
// healthy, an error reports failStatus with the error text as message
func ErrorCheck(name string, failStatus Status, probe func(ctx context.Context) error) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		if err := probe(ctx); err != nil {
			return CheckResult{Status: failStatus, Message: err.Error()}
		}
		return CheckResult{Status: StatusHealthy, Message: "ok"}
	})
}

// PingCheck is an ErrorCheck that reports unhealthy on failure
func PingCheck(name string, ping func(ctx context.Context) error) Checker {
	return ErrorCheck(name, StatusUnhealthy, ping)
}

// AlwaysHealthy reports healthy for as long as the process can answer
func AlwaysHealthy(name string) Checker {
	return NewChecker(name, func(context.Context) CheckResult {
		return CheckResult{Status: StatusHealthy, Message: "serving"}
	})
}
