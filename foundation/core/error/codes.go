// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the interpreter. Codes
//              let front ends tell lexical, lookup and arity failures apart
//              without parsing messages.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Lexical errors
	CodeUnexpectedEOF Code = "UNEXPECTED_EOF"

	// Lookup errors
	CodeUnknownCommand   Code = "UNKNOWN_COMMAND"
	CodeAmbiguousCommand Code = "AMBIGUOUS_COMMAND"
	CodeUnknownOption    Code = "UNKNOWN_OPTION"
	CodeAmbiguousOption  Code = "AMBIGUOUS_OPTION"
	CodeDuplicateEntry   Code = "DUPLICATE_ENTRY"

	// Arity errors
	CodeMissingArgument  Code = "MISSING_ARGUMENT"
	CodeTooFewArguments  Code = "TOO_FEW_ARGUMENTS"
	CodeTooManyArguments Code = "TOO_MANY_ARGUMENTS"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"

	// Command execution
	CodeCommandFailed Code = "COMMAND_FAILED"

	// Configuration and storage
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeDatabaseError Code = "DATABASE_ERROR"
	CodeIOError       Code = "IO_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsLexical reports whether the code describes a tokenizer failure
func (c Code) IsLexical() bool {
	return c == CodeUnexpectedEOF
}

// IsLookup reports whether the code describes a failed name resolution
func (c Code) IsLookup() bool {
	switch c {
	case CodeUnknownCommand, CodeAmbiguousCommand, CodeUnknownOption, CodeAmbiguousOption:
		return true
	}
	return false
}

// IsArity reports whether the code describes an argument count problem
func (c Code) IsArity() bool {
	switch c {
	case CodeMissingArgument, CodeTooFewArguments, CodeTooManyArguments:
		return true
	}
	return false
}

// GetSeverityFromCode returns the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch {
	case code.IsLexical(), code.IsLookup(), code.IsArity(), code == CodeInvalidArgument, code == CodeInvalidInput:
		return SeverityLow
	case code == CodeInternal, code == CodeDatabaseError:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
