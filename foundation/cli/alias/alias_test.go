// File: alias_test.go
// Title: Command Alias Table Tests
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

package alias

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/SoarGroup/soarcli/foundation/core/error"
)

func TestSetAndExpand(t *testing.T) {
	table := New()
	if err := table.Set([]string{"x", "foo", "bar"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	input := []string{"x", "extra"}
	got, ok := table.Expand(input)
	if !ok {
		t.Fatal("Expand() = false, want true")
	}
	if diff := cmp.Diff([]string{"foo", "bar", "extra"}, got); diff != "" {
		t.Errorf("Expand() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x", "extra"}, input); diff != "" {
		t.Errorf("Expand() modified its input (-want +got):\n%s", diff)
	}
}

func TestSetSingleWordRemoves(t *testing.T) {
	table := New()
	_ = table.Set([]string{"x", "foo"})
	if err := table.Set([]string{"x"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if _, ok := table.Expand([]string{"x"}); ok {
		t.Error("Expand() = true after removal")
	}
	if table.Len() != 0 {
		t.Errorf("Len() = %d, want 0", table.Len())
	}

	// Removing an unknown alias is a no-op
	if err := table.Set([]string{"missing"}); err != nil {
		t.Errorf("Set() on unknown alias error = %v", err)
	}
}

func TestSetEmpty(t *testing.T) {
	err := New().Set(nil)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Set(nil) error = %v, want CodeInvalidInput", err)
	}
}

func TestSetOverwritesAndCopies(t *testing.T) {
	table := New()
	def := []string{"p", "print", "-f"}
	_ = table.Set(def)
	def[1] = "changed"

	got, _ := table.Lookup("p")
	if diff := cmp.Diff([]string{"print", "-f"}, got); diff != "" {
		t.Errorf("Lookup() mismatch (-want +got):\n%s", diff)
	}

	_ = table.Set([]string{"p", "production"})
	got, _ = table.Lookup("p")
	if diff := cmp.Diff([]string{"production"}, got); diff != "" {
		t.Errorf("Lookup() after overwrite mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandIdempotent(t *testing.T) {
	table := New()
	_ = table.Set([]string{"p", "print", "-f"})

	once, ok := table.Expand([]string{"p", "s1"})
	if !ok {
		t.Fatal("first Expand() = false")
	}
	twice, ok := table.Expand(once)
	if ok {
		t.Error("second Expand() = true, want false")
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second Expand() changed words (-want +got):\n%s", diff)
	}
}

func TestExpandEmpty(t *testing.T) {
	got, ok := New().Expand(nil)
	if ok || got != nil {
		t.Errorf("Expand(nil) = %v, %v", got, ok)
	}
}

func TestLoad(t *testing.T) {
	table := New()
	err := table.Load([]string{
		"p print",
		"unalias alias -r",
		"w watch",
		"w",
		`say echo "hello world"`,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if diff := cmp.Diff([]string{"p", "say", "unalias"}, table.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	got, _ := table.Lookup("say")
	if diff := cmp.Diff([]string{"echo", "hello world"}, got); diff != "" {
		t.Errorf("Lookup(say) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadBadLine(t *testing.T) {
	table := New()
	err := table.Load([]string{"p print", `q "open`})
	if err == nil {
		t.Fatal("Load() expected error")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeUnexpectedEOF) {
		t.Errorf("error code = %v", mdwerror.GetCode(err))
	}
	var structured *mdwerror.Error
	if !errors.As(err, &structured) {
		t.Fatalf("error %T is not *Error", err)
	}
	if line, _ := structured.Detail("line"); line != 2 {
		t.Errorf("line detail = %v, want 2", line)
	}
	if _, ok := table.Lookup("p"); !ok {
		t.Error("lines before the bad one should be applied")
	}
}

func TestAllAndLines(t *testing.T) {
	table := New()
	_ = table.Load([]string{"b help", "a alias", "s echo {x y}"})

	var names []string
	for name := range table.All() {
		names = append(names, name)
	}
	if diff := cmp.Diff([]string{"a", "b", "s"}, names); diff != "" {
		t.Errorf("All() order mismatch (-want +got):\n%s", diff)
	}

	want := []string{"a alias", "b help", `s echo "x y"`}
	if diff := cmp.Diff(want, table.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}

	reloaded := New()
	if err := reloaded.Load(table.Lines()); err != nil {
		t.Fatalf("reload error = %v", err)
	}
	for name, expansion := range table.All() {
		got, _ := reloaded.Lookup(name)
		if diff := cmp.Diff(expansion, got); diff != "" {
			t.Errorf("reloaded %s mismatch (-want +got):\n%s", name, diff)
		}
	}
}
