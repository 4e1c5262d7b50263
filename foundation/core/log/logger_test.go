// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, clones, formatters and
//              severity-mapped error logging.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	mdwerror "github.com/SoarGroup/soarcli/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf, Name: "test"}), &buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("entries below the minimum level were written: %q", out)
	}
	if !strings.Contains(out, "[WRN] {test} shown") {
		t.Errorf("warn entry missing: %q", out)
	}
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelDebug, FormatJSON)
	child := parent.WithField("component", "tokenizer")

	parent.Info("parent")
	child.Info("child", Fields{"line": 3})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}

	var first, second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if _, ok := first["component"]; ok {
		t.Error("parent logger picked up the child's field")
	}
	if second["component"] != "tokenizer" || second["line"] != float64(3) {
		t.Errorf("child entry = %v", second)
	}
	if second["logger"] != "test" || second["level"] != "info" {
		t.Errorf("child entry = %v", second)
	}
}

func TestTextFormatter_SortedFields(t *testing.T) {
	f := &TextFormatter{DisableTimestamp: true}
	entry := NewEntry(LevelInfo, "dispatched")
	entry.Fields["words"] = 2
	entry.Fields["command"] = "print"

	data, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := "[INF] dispatched [command=print words=2]\n"
	if string(data) != want {
		t.Errorf("Format() = %q, want %q", data, want)
	}
}

func TestLogger_LogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
	}{
		{"low severity goes to debug", mdwerror.New("no such command: x").WithCode(mdwerror.CodeUnknownCommand), "debug"},
		{"medium severity goes to warn", mdwerror.New("failed").WithCode(mdwerror.CodeCommandFailed), "warn"},
		{"high severity goes to error", mdwerror.New("db").WithCode(mdwerror.CodeDatabaseError), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError("command rejected", tt.err)

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("unmarshal %q: %v", buf.String(), err)
			}
			if entry["level"] != tt.level {
				t.Errorf("level = %v, want %v", entry["level"], tt.level)
			}
			if entry["error_code"] != mdwerror.GetCode(tt.err).String() {
				t.Errorf("error_code = %v", entry["error_code"])
			}
		})
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if lvl, err := ParseLevel("WARNING"); err != nil || lvl != LevelWarn {
		t.Errorf("ParseLevel(WARNING) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel should reject unknown levels")
	}
	if f, err := ParseFormat("text"); err != nil || f != FormatText {
		t.Errorf("ParseFormat(text) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat should reject unknown formats")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelError) {
		t.Error("Discard logger should not enable any level")
	}
	logger.Error("nothing")
}
