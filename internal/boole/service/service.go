// ============================================================================
// boole - Propositional Logic Toolkit
// ============================================================================
//
// Package:     service
// Description: Evaluation service shared by the CLI, HTTP server and TUI.
//              Wraps the logic engine with result caching and history.
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	mdwerror "github.com/msto63/boole/foundation/core/error"
	mdwlogic "github.com/msto63/boole/foundation/logic"
	mdwcanonical "github.com/msto63/boole/foundation/logic/canonical"
	"github.com/msto63/boole/foundation/logic/sat"
	mdwstringx "github.com/msto63/boole/foundation/utils/stringx"
	"github.com/msto63/boole/internal/boole/store"
	"github.com/msto63/boole/pkg/core/cache"
	"github.com/msto63/boole/pkg/core/health"
	"github.com/msto63/boole/pkg/core/logging"
	"github.com/msto63/boole/pkg/core/version"
)

// maxResultLength bounds the result summary kept in the history
const maxResultLength = 512

// EvaluateRequest asks for the value of an expression. Assignment binds the
// single-letter variables; literal expressions need none.
type EvaluateRequest struct {
	Expression string          `json:"expression"`
	Assignment map[string]bool `json:"assignment,omitempty"`
}

// EvaluateResult is the value of an expression
type EvaluateResult struct {
	ID         string          `json:"id"`
	Expression string          `json:"expression"`
	Variables  []string        `json:"variables"`
	Assignment map[string]bool `json:"assignment,omitempty"`
	Result     bool            `json:"result"`
}

// TableResult is a truth table with its history ID
type TableResult struct {
	ID string `json:"id"`
	*mdwcanonical.Table
	Classification mdwcanonical.Classification `json:"classification"`
	Cached         bool                        `json:"cached"`
}

// NormalFormResult is a truth table together with its canonical forms
type NormalFormResult struct {
	ID string `json:"id"`
	*mdwlogic.NormalForms
	Cached bool `json:"cached"`
}

// SolveResult is a solver verdict with its history ID
type SolveResult struct {
	ID string `json:"id"`
	*sat.Result
	Classification mdwcanonical.Classification `json:"classification"`
}

// Stats summarizes service activity
type Stats struct {
	Cache        cache.Stats   `json:"cache"`
	HistoryCount int64         `json:"history_count"`
	Uptime       time.Duration `json:"uptime"`
}

// Config holds service configuration
type Config struct {
	// Engine limits, used when Engine is nil
	MaxExpressionLength int
	MaxVariables        int

	Engine *mdwlogic.Engine
	Cache  *cache.ResultCache
	Store  store.Store
	Logger *logging.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		MaxExpressionLength: mdwlogic.DefaultMaxExpressionLength,
		MaxVariables:        mdwcanonical.DefaultMaxVariables,
	}
}

// Service evaluates expressions and keeps their history
type Service struct {
	engine  *mdwlogic.Engine
	cache   *cache.ResultCache
	store   store.Store
	logger  *logging.Logger
	startAt time.Time
	now     func() time.Time
}

// New creates a service. Missing components get in-memory defaults.
func New(cfg Config) (*Service, error) {
	if cfg.Logger == nil {
		cfg.Logger = logging.New("service")
	}

	engine := cfg.Engine
	if engine == nil {
		var err error
		engine, err = mdwlogic.New(mdwlogic.Options{
			Logger:              cfg.Logger.Logger,
			MaxExpressionLength: cfg.MaxExpressionLength,
			MaxVariables:        cfg.MaxVariables,
		})
		if err != nil {
			return nil, err
		}
	}

	if cfg.Cache == nil {
		cfg.Cache = cache.NewResultCache(cache.DefaultConfig())
	}
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore(store.DefaultMemoryCapacity)
	}

	return &Service{
		engine:  engine,
		cache:   cfg.Cache,
		store:   cfg.Store,
		logger:  cfg.Logger,
		startAt: time.Now(),
		now:     time.Now,
	}, nil
}

// Engine returns the underlying logic engine
func (s *Service) Engine() *mdwlogic.Engine {
	return s.engine
}

// Evaluate computes the value of an expression. Expressions with variables
// or the shorthand constants T and F are evaluated under req.Assignment.
func (s *Service) Evaluate(ctx context.Context, req EvaluateRequest) (*EvaluateResult, error) {
	start := s.now()
	if err := ctx.Err(); err != nil {
		return nil, canceled(err, "evaluate")
	}

	vars := mdwcanonical.Variables(req.Expression)
	var (
		value bool
		err   error
	)
	if len(vars) == 0 && !hasShorthand(req.Expression) {
		value, err = s.engine.Evaluate(req.Expression)
	} else {
		value, err = s.engine.EvaluateWith(req.Expression, req.Assignment)
	}

	id := s.record(ctx, store.KindEvaluate, req.Expression, fmt.Sprint(value), err, start)
	if err != nil {
		return nil, err
	}

	return &EvaluateResult{
		ID:         id,
		Expression: req.Expression,
		Variables:  vars,
		Assignment: req.Assignment,
		Result:     value,
	}, nil
}

// TruthTable builds the truth table of an expression, cached by fingerprint
func (s *Service) TruthTable(ctx context.Context, expr string) (*TableResult, error) {
	start := s.now()
	if err := ctx.Err(); err != nil {
		return nil, canceled(err, "truth_table")
	}

	table, cached := s.cache.GetTable(expr)
	if !cached {
		var err error
		table, err = s.engine.TruthTable(expr)
		if err != nil {
			s.record(ctx, store.KindTable, expr, "", err, start)
			return nil, err
		}
		s.cache.SetTable(expr, table)
	}

	class := table.Classify()
	summary := fmt.Sprintf("%s, %d rows", class, len(table.Rows))
	return &TableResult{
		ID:             s.record(ctx, store.KindTable, expr, summary, nil, start),
		Table:          table,
		Classification: class,
		Cached:         cached,
	}, nil
}

// NormalForms derives DNF and CNF of an expression, cached by fingerprint
func (s *Service) NormalForms(ctx context.Context, expr string) (*NormalFormResult, error) {
	start := s.now()
	if err := ctx.Err(); err != nil {
		return nil, canceled(err, "normal_forms")
	}

	nf, cached := s.cache.GetNormalForms(expr)
	if !cached {
		var err error
		nf, err = s.engine.NormalForms(expr)
		if err != nil {
			s.record(ctx, store.KindNormalForms, expr, "", err, start)
			return nil, err
		}
		s.cache.SetNormalForms(expr, nf)
	}

	summary := "DNF: " + nf.DNF + " | CNF: " + nf.CNF
	return &NormalFormResult{
		ID:          s.record(ctx, store.KindNormalForms, expr, summary, nil, start),
		NormalForms: nf,
		Cached:      cached,
	}, nil
}

// Solve decides satisfiability and validity of an expression with the SAT
// solver. Unlike TruthTable it accepts any number of variables.
func (s *Service) Solve(ctx context.Context, expr string) (*SolveResult, error) {
	start := s.now()
	if err := ctx.Err(); err != nil {
		return nil, canceled(err, "solve")
	}

	res, err := s.engine.Solve(expr)
	if err != nil {
		s.record(ctx, store.KindSolve, expr, "", err, start)
		return nil, err
	}

	class := res.Classification()
	summary := class.String()
	if res.Model != nil {
		summary += ", model " + res.Model.String()
	}
	return &SolveResult{
		ID:             s.record(ctx, store.KindSolve, expr, summary, nil, start),
		Result:         res,
		Classification: class,
	}, nil
}

// History returns up to limit records, newest first
func (s *Service) History(ctx context.Context, limit int) ([]*store.Record, error) {
	return s.store.List(ctx, limit)
}

// Record returns one history record
func (s *Service) Record(ctx context.Context, id string) (*store.Record, error) {
	return s.store.Get(ctx, id)
}

// Stats returns cache and history counters
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		Cache:        s.cache.Stats(),
		HistoryCount: n,
		Uptime:       time.Since(s.startAt),
	}, nil
}

// HealthRegistry returns a registry checking the store and the engine
func (s *Service) HealthRegistry() *health.Registry {
	registry := health.NewRegistry("boole", version.Platform)
	registry.Register(health.PingCheck("store", s.store.Ping))
	registry.Register(health.ErrorCheck("engine", health.StatusUnhealthy, func(ctx context.Context) error {
		return s.engine.SelfTest()
	}))
	return registry
}

// Close releases the cache and the store
func (s *Service) Close() error {
	s.cache.Close()
	return s.store.Close()
}

// record appends a history entry and returns its ID. Storage failures are
// logged and do not fail the operation.
func (s *Service) record(ctx context.Context, kind store.Kind, expr, result string, opErr error, start time.Time) string {
	rec := &store.Record{
		ID:          uuid.NewString(),
		Kind:        kind,
		Expression:  expr,
		Fingerprint: cache.Fingerprint(expr),
		Result:      mdwstringx.Truncate(result, maxResultLength, "..."),
		Duration:    s.now().Sub(start),
		CreatedAt:   s.now(),
	}
	if opErr != nil {
		rec.Result = ""
		rec.ErrorCode = string(mdwlogic.CodeOf(opErr))
	}

	logger := s.logger
	if reqID := RequestIDFrom(ctx); reqID != "" {
		logger = s.logger.WithRequestID(reqID)
	}

	if opErr != nil {
		logger.Debug("Operation failed", "kind", string(kind), "id", rec.ID, "code", rec.ErrorCode)
	} else {
		logger.Debug("Operation completed", "kind", string(kind), "id", rec.ID, "duration", rec.Duration.String())
	}

	if err := s.store.Save(ctx, rec); err != nil {
		logger.Warn("Failed to save history record", "id", rec.ID, "error", err.Error())
	}
	return rec.ID
}

func hasShorthand(expr string) bool {
	return strings.ContainsRune(expr, mdwcanonical.ConstTrue) || strings.ContainsRune(expr, mdwcanonical.ConstFalse)
}

func canceled(err error, operation string) error {
	return mdwerror.Wrap(err, "request canceled").
		WithCode(mdwerror.CodeTimeout).
		WithOperation(operation)
}

type requestIDKey struct{}

// WithRequestID attaches a request ID used in log entries
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request ID of ctx, or ""
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
