// ============================================================================
// soarcli - Soar command interpreter
// ============================================================================
//
// Package:     version
// Description: Central version information
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Application version
	App = "0.1.0"

	// Protocol is the remote console message protocol version
	Protocol = "1"
)

// Set at build time with -ldflags "-X github.com/SoarGroup/soarcli/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the version line printed by "soarcli version"
func String() string {
	return fmt.Sprintf("soarcli %s (commit %s, built %s, %s %s/%s, protocol %s)",
		App, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH, Protocol)
}
