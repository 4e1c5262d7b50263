// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps them to
//              log levels when reporting a rejected command line.
// Version: v0.1.0
// Created: 2025-01-24
// Modified: 2025-01-24

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers rejected user input: syntax, lookup and arity errors
	SeverityLow Severity = iota

	// SeverityMedium covers failures of a single command
	SeverityMedium

	// SeverityHigh covers failures of supporting infrastructure
	SeverityHigh

	// SeverityCritical makes the session unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
