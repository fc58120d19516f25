// ============================================================================
// boole - Propositional Logic Toolkit
// ============================================================================
//
// Package:     cache
// Description: Typed cache for truth tables and normal forms keyed by the
//              expression fingerprint
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cache

import (
	"encoding/hex"

	mdwlogic "github.com/msto63/boole/foundation/logic"
	mdwcanonical "github.com/msto63/boole/foundation/logic/canonical"
	"github.com/zeebo/blake3"
)

// Fingerprint is the hex-encoded blake3 hash of the exact expression text.
// White space is part of the key: "t rue" and "true\t∧ A" fail to lex while
// "true ∧ A" does not.
func Fingerprint(expr string) string {
	sum := blake3.Sum256([]byte(expr))
	return hex.EncodeToString(sum[:])
}

func tableKey(expr string) string { return "table:" + Fingerprint(expr) }
func formsKey(expr string) string { return "nf:" + Fingerprint(expr) }

// ResultCache caches truth tables and normal forms
type ResultCache struct {
	cache *Cache
}

// NewResultCache creates a result cache
func NewResultCache(cfg Config) *ResultCache {
	return &ResultCache{cache: New(cfg)}
}

// GetTable retrieves a cached truth table
func (c *ResultCache) GetTable(expr string) (*mdwcanonical.Table, bool) {
	if val, ok := c.cache.Get(tableKey(expr)); ok {
		if table, ok := val.(*mdwcanonical.Table); ok {
			return table, true
		}
	}
	return nil, false
}

// SetTable caches a truth table
func (c *ResultCache) SetTable(expr string, table *mdwcanonical.Table) {
	c.cache.Set(tableKey(expr), table)
}

// GetNormalForms retrieves cached normal forms
func (c *ResultCache) GetNormalForms(expr string) (*mdwlogic.NormalForms, bool) {
	if val, ok := c.cache.Get(formsKey(expr)); ok {
		if nf, ok := val.(*mdwlogic.NormalForms); ok {
			return nf, true
		}
	}
	return nil, false
}

// SetNormalForms caches normal forms together with their table
func (c *ResultCache) SetNormalForms(expr string, nf *mdwlogic.NormalForms) {
	c.cache.Set(formsKey(expr), nf)
	if nf.Table != nil {
		c.cache.Set(tableKey(expr), nf.Table)
	}
}

// Stats returns the underlying cache statistics
func (c *ResultCache) Stats() Stats {
	return c.cache.Stats()
}

// Clear removes all cached results
func (c *ResultCache) Clear() {
	c.cache.Clear()
}

// Close stops background cleanup
func (c *ResultCache) Close() {
	c.cache.Close()
}
