package tui

import (
	"time"

	"github.com/msto63/boole/internal/boole/service"
	"github.com/msto63/boole/internal/boole/store"
)

// View represents the screens of the evaluator
type View int

const (
	ViewAnalyze View = iota
	ViewHistory
)

// viewCount is the number of views cycled by Tab
const viewCount = 2

// Entry is one analyzed expression shown in the result log
type Entry struct {
	Expression string
	Result     *service.NormalFormResult
	Solved     *service.SolveResult // set instead of Result past the table limit
	Err        error
	Duration   time.Duration
}

// analyzeMsg carries the outcome of an analysis
type analyzeMsg struct {
	entry Entry
}

// historyMsg carries records loaded from the history store
type historyMsg struct {
	records []*store.Record
	err     error
}
