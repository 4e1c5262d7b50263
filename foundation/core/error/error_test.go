// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes and severity.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("no such command: x").WithCode(CodeUnknownCommand),
			message:  "line 3",
			wantMsg:  "line 3: no such command: x",
			wantCode: CodeUnknownCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeUnexpectedEOF, SeverityLow},
		{CodeAmbiguousOption, SeverityLow},
		{CodeTooManyArguments, SeverityLow},
		{CodeCommandFailed, SeverityMedium},
		{CodeDatabaseError, SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeUnknownCommand)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity was overwritten: %v", explicit.Severity())
	}
}

func TestHasCode(t *testing.T) {
	inner := New("unexpected end of input").WithCode(CodeUnexpectedEOF)
	outer := Wrap(inner, "script.soar").WithCode(CodeIOError)
	std := fmt.Errorf("context: %w", outer)

	if !HasCode(std, CodeUnexpectedEOF) {
		t.Error("HasCode should find the inner code through fmt wrapping")
	}
	if !HasCode(std, CodeIOError) {
		t.Error("HasCode should find the outer code")
	}
	if HasCode(std, CodeUnknownOption) {
		t.Error("HasCode reported a code that is not in the chain")
	}
	if HasCode(errors.New("plain"), CodeUnknown) {
		t.Error("HasCode should be false for plain errors")
	}
	if GetCode(std) != CodeIOError {
		t.Errorf("GetCode() = %v, want %v", GetCode(std), CodeIOError)
	}
	if GetCode(nil) != CodeUnknown {
		t.Errorf("GetCode(nil) = %v, want %v", GetCode(nil), CodeUnknown)
	}
}

func TestDetailsAndString(t *testing.T) {
	err := New("too many arguments").
		WithCode(CodeTooManyArguments).
		WithOperation("options.CheckArgCount").
		WithDetail("max", 1).
		WithDetail("got", 3)

	details := err.Details()
	details["max"] = 99
	if v, _ := err.Detail("max"); v != 1 {
		t.Errorf("Details() must return a copy, got max=%v", v)
	}

	s := err.String()
	for _, want := range []string{"Code: TOO_MANY_ARGUMENTS", "Operation: options.CheckArgCount", "Details: {got=3, max=1}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("MarshalJSON() error = %v", jerr)
	}
	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("unmarshal: %v", jerr)
	}
	if decoded["code"] != "TOO_MANY_ARGUMENTS" || decoded["severity"] != "low" {
		t.Errorf("unexpected JSON: %s", data)
	}
}
