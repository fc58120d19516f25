// ============================================================================
// boole - Propositional Logic Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version information for the CLI, server and TUI
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Release version of the toolkit
	Platform = "1.0.0"

	// Component versions
	Logic  = "1.0.0"
	Server = "1.0.0"
	TUI    = "0.9.0"

	// API is the version prefix of the HTTP routes
	API = "v1"
)

// Set at build time via -ldflags "-X ..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "logic":
		return Logic
	case "server":
		return Server
	case "tui":
		return TUI
	default:
		return Platform
	}
}

// Info describes the running build
type Info struct {
	Version   string `json:"version" yaml:"version"`
	API       string `json:"api" yaml:"api"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build information
func Get() Info {
	return Info{
		Version:   Platform,
		API:       API,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("boole %s (api %s, commit %s, built %s, %s %s)",
		i.Version, i.API, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
