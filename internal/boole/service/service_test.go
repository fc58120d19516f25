package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	mdwerror "github.com/msto63/boole/foundation/core/error"
	mdwcanonical "github.com/msto63/boole/foundation/logic/canonical"
	"github.com/msto63/boole/internal/boole/store"
	"github.com/msto63/boole/pkg/core/health"
	"github.com/msto63/boole/pkg/core/logging"
)

func newTestService(t *testing.T) (*Service, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := logging.Wrap(logging.NewLogger(logging.LoggerConfig{
		Level:  "debug",
		Output: &buf,
	}), "service")

	cfg := DefaultConfig()
	cfg.Logger = logger
	cfg.MaxVariables = 4
	svc, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { svc.Close() })
	return svc, &buf
}

func TestEvaluate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  EvaluateRequest
		want bool
	}{
		{"literal", EvaluateRequest{Expression: "((true ∧ false) → true) ↔ true"}, true},
		{"negation", EvaluateRequest{Expression: "¬true"}, false},
		{"variables", EvaluateRequest{Expression: "A ∧ ¬B", Assignment: map[string]bool{"A": true, "B": false}}, true},
		{"shorthand", EvaluateRequest{Expression: "T → F"}, false},
		{"reference", EvaluateRequest{Expression: "((A ∧ B) → C) ↔ A", Assignment: map[string]bool{"A": true, "B": true, "C": false}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Evaluate(ctx, tt.req)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if res.Result != tt.want {
				t.Errorf("Result = %v, want %v", res.Result, tt.want)
			}
			if res.ID == "" {
				t.Error("result should carry a history ID")
			}
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  EvaluateRequest
		code mdwerror.Code
	}{
		{"missing bracket", EvaluateRequest{Expression: "(true ∧ false"}, mdwerror.CodeParseMissingBracket},
		{"unbound", EvaluateRequest{Expression: "A ∨ B", Assignment: map[string]bool{"A": true}}, mdwerror.CodeUnboundVariable},
		{"empty", EvaluateRequest{Expression: ""}, mdwerror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Evaluate(ctx, tt.req)
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Evaluate() error = %v, want %s", err, tt.code)
			}
		})
	}

	// failures are part of the history
	recs, err := svc.History(ctx, 0)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(recs) != len(tests) {
		t.Fatalf("history has %d records, want %d", len(recs), len(tests))
	}
	for _, rec := range recs {
		if !rec.Failed() {
			t.Errorf("record %s should be marked failed", rec.ID)
		}
	}
}

func TestEvaluate_Canceled(t *testing.T) {
	svc, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Evaluate(ctx, EvaluateRequest{Expression: "true"}); !mdwerror.HasCode(err, mdwerror.CodeTimeout) {
		t.Errorf("Evaluate() error = %v, want TIMEOUT", err)
	}
}

func TestTruthTable_Cached(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.TruthTable(ctx, "A ∨ B")
	if err != nil {
		t.Fatalf("TruthTable() error = %v", err)
	}
	if first.Cached || len(first.Rows) != 4 {
		t.Errorf("first call: cached=%v rows=%d", first.Cached, len(first.Rows))
	}

	second, err := svc.TruthTable(ctx, "A ∨ B")
	if err != nil {
		t.Fatalf("TruthTable() error = %v", err)
	}
	if !second.Cached {
		t.Error("repeated expression should hit the cache")
	}
	if first.ID == second.ID {
		t.Error("each call gets its own history record")
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Cache.Hits != 1 || stats.HistoryCount != 2 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestTruthTable_CacheKeepsLexErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.TruthTable(ctx, "true ∧ A"); err != nil {
		t.Fatalf("TruthTable() error = %v", err)
	}

	tests := []struct {
		expr string
		code mdwerror.Code
	}{
		{"t rue ∧ A", mdwerror.CodeLexOperandFormat},
		{"true\t∧ A", mdwerror.CodeLexUnknownChar},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			res, err := svc.TruthTable(ctx, tt.expr)
			if !mdwerror.HasCode(err, tt.code) {
				t.Fatalf("TruthTable() = %+v, %v, want %s", res, err, tt.code)
			}
			if _, err := svc.NormalForms(ctx, tt.expr); !mdwerror.HasCode(err, tt.code) {
				t.Errorf("NormalForms() error = %v, want %s", err, tt.code)
			}
		})
	}

	again, err := svc.TruthTable(ctx, "true ∧ A")
	if err != nil || !again.Cached || again.Expression != "true ∧ A" {
		t.Errorf("TruthTable() = %+v, %v", again, err)
	}
}

func TestTruthTable_TooManyVariables(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.TruthTable(context.Background(), "A ∧ B ∧ C ∧ D ∧ E")
	if !mdwerror.HasCode(err, mdwerror.CodeTooManyVariables) {
		t.Errorf("TruthTable() error = %v, want TOO_MANY_VARIABLES", err)
	}
}

func TestNormalForms(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	nf, err := svc.NormalForms(ctx, "A → B")
	if err != nil {
		t.Fatalf("NormalForms() error = %v", err)
	}
	if nf.CNF != "(¬A ∨ B)" {
		t.Errorf("CNF = %s", nf.CNF)
	}
	if nf.Classification != mdwcanonical.Contingent {
		t.Errorf("Classification = %s", nf.Classification)
	}

	// the table computed for the normal forms is reused
	table, err := svc.TruthTable(ctx, "A → B")
	if err != nil {
		t.Fatalf("TruthTable() error = %v", err)
	}
	if !table.Cached {
		t.Error("table should come from the cache")
	}

	rec, err := svc.Record(ctx, nf.ID)
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if rec.Kind != store.KindNormalForms || !strings.Contains(rec.Result, "(¬A ∨ B)") {
		t.Errorf("Record() = %+v", rec)
	}
	if rec.Fingerprint == "" {
		t.Error("record should carry the fingerprint")
	}
}

func TestSolve(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// five variables exceed the table limit of the test service
	res, err := svc.Solve(ctx, "A ∧ B ∧ C ∧ D ∧ ¬E")
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if res.Classification != mdwcanonical.Contingent {
		t.Errorf("Classification = %s", res.Classification)
	}
	want := mdwcanonical.Assignment{"A": true, "B": true, "C": true, "D": true, "E": false}
	if res.Model.String() != want.String() {
		t.Errorf("Model = %s, want %s", res.Model, want)
	}

	rec, err := svc.Record(ctx, res.ID)
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if rec.Kind != store.KindSolve || !strings.HasPrefix(rec.Result, "contingent, model A=true") {
		t.Errorf("Record() = %+v", rec)
	}

	if _, err := svc.Solve(ctx, "A ∨"); !mdwerror.HasCode(err, mdwerror.CodeParseUnmatchedToken) {
		t.Errorf("Solve() error = %v", err)
	}
}

func TestRecord_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Record(context.Background(), "missing"); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Record() error = %v", err)
	}
}

func TestRequestIDInLogs(t *testing.T) {
	svc, buf := newTestService(t)
	ctx := WithRequestID(context.Background(), "req-42")

	if _, err := svc.Evaluate(ctx, EvaluateRequest{Expression: "true"}); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"request_id":"req-42"`) {
		t.Errorf("log output missing request id: %s", buf.String())
	}
	if RequestIDFrom(context.Background()) != "" {
		t.Error("empty context should have no request id")
	}
}

func TestHealthRegistry(t *testing.T) {
	svc, _ := newTestService(t)

	report := svc.HealthRegistry().Check(context.Background())
	if report.Status != health.StatusHealthy {
		t.Errorf("Status = %s, checks = %+v", report.Status, report.Checks)
	}
	if len(report.Checks) != 2 {
		t.Errorf("got %d checks, want 2", len(report.Checks))
	}
}
