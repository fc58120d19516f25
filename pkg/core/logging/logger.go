// ============================================================================
// boole - Propositional Logic Toolkit
// ============================================================================
//
// Package:     logging
// Description: Level names re-exported for callers of the key-value logger
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package logging

import mdwlog "github.com/msto63/boole/foundation/core/log"

// Level is the foundation log level
type Level = mdwlog.Level

const (
	LevelTrace = mdwlog.LevelTrace
	LevelDebug = mdwlog.LevelDebug
	LevelInfo  = mdwlog.LevelInfo
	LevelWarn  = mdwlog.LevelWarn
	LevelError = mdwlog.LevelError
)
