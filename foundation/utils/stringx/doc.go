// Package stringx provides rune-aware string helpers used by the table
// renderer, the configuration loader and the expression fingerprinting.
package stringx
