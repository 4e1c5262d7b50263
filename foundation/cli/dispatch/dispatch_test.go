// File: dispatch_test.go
// Title: Command Dispatcher Tests
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

package dispatch

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SoarGroup/soarcli/foundation/cli/alias"
	"github.com/SoarGroup/soarcli/foundation/cli/tokenizer"
	mdwerror "github.com/SoarGroup/soarcli/foundation/core/error"
	mdwlog "github.com/SoarGroup/soarcli/foundation/core/log"
)

type recorder struct {
	name  string
	calls [][]string
	err   error
}

func (r *recorder) Name() string { return r.name }
func (r *recorder) Usage() string { return r.name + " [args...]" }

func (r *recorder) Parse(words []string) error {
	r.calls = append(r.calls, words)
	return r.err
}

func newTestParser(t *testing.T, names ...string) (*Parser, map[string]*recorder) {
	t.Helper()
	recorders := make(map[string]*recorder)
	handlers := make([]Handler, 0, len(names))
	for _, name := range names {
		r := &recorder{name: name}
		recorders[name] = r
		handlers = append(handlers, r)
	}
	reg, err := NewRegistry(handlers...)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return New(reg, alias.New(), WithLogger(mdwlog.Discard())), recorders
}

func TestNewRegistry_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		handlers []Handler
		wantCode mdwerror.Code
	}{
		{"duplicate", []Handler{&recorder{name: "print"}, &recorder{name: "print"}}, mdwerror.CodeDuplicateEntry},
		{"blank", []Handler{&recorder{name: " "}}, mdwerror.CodeInvalidInput},
		{"nil", []Handler{nil}, mdwerror.CodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.handlers...)
			if !mdwerror.HasCode(err, tt.wantCode) {
				t.Errorf("NewRegistry() error = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}

func TestRegistry_Lookup(t *testing.T) {
	p, _ := newTestParser(t, "print", "production", "preferences", "watch")
	reg := p.Registry()

	tests := []struct {
		name     string
		input    string
		want     string
		wantCode mdwerror.Code
		wantMsg  string
	}{
		{name: "exact", input: "print", want: "print"},
		{name: "unique prefix", input: "w", want: "watch"},
		{name: "longer prefix", input: "prod", want: "production"},
		{name: "ambiguous", input: "p", wantCode: mdwerror.CodeAmbiguousCommand,
			wantMsg: "ambiguous command, possibilities: preferences print production"},
		{name: "still ambiguous", input: "pr", wantCode: mdwerror.CodeAmbiguousCommand,
			wantMsg: "ambiguous command, possibilities: preferences print production"},
		{name: "narrowed", input: "pri", want: "print"},
		{name: "unknown", input: "zap", wantCode: mdwerror.CodeUnknownCommand,
			wantMsg: "no such command: zap"},
		{name: "empty name", input: "", wantCode: mdwerror.CodeUnknownCommand,
			wantMsg: "no such command: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := reg.Lookup(tt.input)
			if tt.wantCode != "" {
				if !mdwerror.HasCode(err, tt.wantCode) {
					t.Fatalf("Lookup(%q) error = %v, want code %v", tt.input, err, tt.wantCode)
				}
				if err.Error() != tt.wantMsg {
					t.Errorf("Lookup(%q) message = %q, want %q", tt.input, err.Error(), tt.wantMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.input, err)
			}
			if h.Name() != tt.want {
				t.Errorf("Lookup(%q) = %s, want %s", tt.input, h.Name(), tt.want)
			}
		})
	}
}

func TestRegistry_PrintProduction(t *testing.T) {
	p, _ := newTestParser(t, "print", "production")
	reg := p.Registry()

	for _, input := range []string{"p", "pr"} {
		if _, err := reg.Lookup(input); !mdwerror.HasCode(err, mdwerror.CodeAmbiguousCommand) {
			t.Errorf("Lookup(%q) error = %v, want ambiguous", input, err)
		}
	}
	if h, err := reg.Lookup("pri"); err != nil || h.Name() != "print" {
		t.Errorf("Lookup(pri) = %v, %v", h, err)
	}
	if h, err := reg.Lookup("pro"); err != nil || h.Name() != "production" {
		t.Errorf("Lookup(pro) = %v, %v", h, err)
	}
}

func TestRegistry_Listing(t *testing.T) {
	p, _ := newTestParser(t, "watch", "alias", "print")
	reg := p.Registry()

	if diff := cmp.Diff([]string{"alias", "print", "watch"}, reg.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	var names []string
	for _, h := range reg.Handlers() {
		names = append(names, h.Name())
	}
	if diff := cmp.Diff(reg.Names(), names); diff != "" {
		t.Errorf("Handlers() order mismatch (-want +got):\n%s", diff)
	}
	if _, ok := reg.Get("pri"); ok {
		t.Error("Get() must not resolve abbreviations")
	}
	if reg.Len() != 3 {
		t.Errorf("Len() = %d", reg.Len())
	}
}

func TestParser_HandleCommand(t *testing.T) {
	p, recs := newTestParser(t, "print", "watch")
	_ = p.Aliases().Set([]string{"p", "print", "-f"})

	if err := p.HandleCommand(nil); err != nil {
		t.Errorf("HandleCommand(nil) error = %v", err)
	}
	if err := p.HandleCommand([]string{"p", "s1"}); err != nil {
		t.Fatalf("HandleCommand(p s1) error = %v", err)
	}
	if err := p.HandleCommand([]string{"wat", "3"}); err != nil {
		t.Fatalf("HandleCommand(wat 3) error = %v", err)
	}

	if diff := cmp.Diff([][]string{{"print", "-f", "s1"}}, recs["print"].calls); diff != "" {
		t.Errorf("print calls mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]string{{"wat", "3"}}, recs["watch"].calls); diff != "" {
		t.Errorf("watch calls mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_AliasExpandedOnce(t *testing.T) {
	p, recs := newTestParser(t, "print")
	_ = p.Aliases().Set([]string{"print", "print", "--full"})

	if err := p.HandleCommand([]string{"print"}); err != nil {
		t.Fatalf("HandleCommand() error = %v", err)
	}
	if diff := cmp.Diff([][]string{{"print", "--full"}}, recs["print"].calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_Errors(t *testing.T) {
	p, recs := newTestParser(t, "print", "production")

	err := p.HandleCommand([]string{"p"})
	if !mdwerror.HasCode(err, mdwerror.CodeAmbiguousCommand) {
		t.Errorf("error = %v, want ambiguous", err)
	}
	if p.LastError() != "ambiguous command, possibilities: print production" {
		t.Errorf("LastError() = %q", p.LastError())
	}

	recs["print"].err = errors.New("kernel refused")
	err = p.HandleCommand([]string{"print"})
	if !mdwerror.HasCode(err, mdwerror.CodeCommandFailed) {
		t.Errorf("error = %v, want CodeCommandFailed", err)
	}
	if p.LastError() != "print: kernel refused" {
		t.Errorf("LastError() = %q", p.LastError())
	}

	recs["print"].err = mdwerror.New("too many arguments").WithCode(mdwerror.CodeTooManyArguments)
	err = p.HandleCommand([]string{"print"})
	if !mdwerror.HasCode(err, mdwerror.CodeTooManyArguments) {
		t.Errorf("structured handler errors should pass through, got %v", err)
	}

	recs["print"].err = nil
	if err := p.HandleCommand([]string{"print"}); err != nil {
		t.Fatalf("HandleCommand() error = %v", err)
	}
	if p.LastError() != "" {
		t.Errorf("LastError() after success = %q", p.LastError())
	}
}

func TestParser_AsTokenizerHandler(t *testing.T) {
	p, recs := newTestParser(t, "print", "watch")
	tok := tokenizer.New(p)

	if err := tok.Evaluate("print a; w 1\nprint {b c}"); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if diff := cmp.Diff([][]string{{"print", "a"}, {"print", "b c"}}, recs["print"].calls); diff != "" {
		t.Errorf("print calls mismatch (-want +got):\n%s", diff)
	}

	err := tok.Evaluate("print x; bogus; print y")
	if !mdwerror.HasCode(err, mdwerror.CodeUnknownCommand) {
		t.Fatalf("Evaluate() error = %v, want unknown command", err)
	}
	if got := len(recs["print"].calls); got != 3 {
		t.Errorf("print called %d times, want 3", got)
	}
}

func TestParser_TracesCommands(t *testing.T) {
	reg, err := NewRegistry(&recorder{name: "print"})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	tests := []struct {
		name  string
		level mdwlog.Level
		want  bool
	}{
		{"trace level", mdwlog.LevelTrace, true},
		{"debug level", mdwlog.LevelDebug, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := mdwlog.NewWithConfig(mdwlog.Config{Level: tt.level, Format: mdwlog.FormatText, Output: &buf})
			p := New(reg, alias.New(), WithLogger(logger))

			if err := p.HandleCommand([]string{"print", "-c"}); err != nil {
				t.Fatalf("HandleCommand() error = %v", err)
			}
			if got := strings.Contains(buf.String(), "Command received"); got != tt.want {
				t.Errorf("trace logged = %v, want %v; log:\n%s", got, tt.want, buf.String())
			}
		})
	}
}
