// ============================================================================
// soarcli - Soar command interpreter
// ============================================================================
//
// Package:     console
// Description: Scrollback entries and message types for async operations
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package console

// LineKind classifies a scrollback line
type LineKind int

const (
	LineEcho   LineKind = iota // input as typed, with its prompt
	LineOutput                 // command output
	LineError                  // evaluation error
	LineInfo                   // console notices
)

// Line is one line of scrollback
type Line struct {
	Kind LineKind
	Text string
}

// historyLoadedMsg carries previously recorded input for up/down recall
type historyLoadedMsg struct {
	lines []string
	err   error
}
