// File: prefix_test.go
// Title: Abbreviation Resolver Tests
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

package prefix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name           string
		names          []string
		text           string
		wantMatch      string
		wantOK         bool
		wantCandidates []string
	}{
		{
			name:      "single name any prefix",
			names:     []string{"print"},
			text:      "p",
			wantMatch: "print",
			wantOK:    true,
		},
		{
			name:      "single name full",
			names:     []string{"print"},
			text:      "print",
			wantMatch: "print",
			wantOK:    true,
		},
		{
			name:           "ambiguous on shared prefix",
			names:          []string{"print", "preferences"},
			text:           "pr",
			wantCandidates: []string{"print", "preferences"},
		},
		{
			name:      "one more character disambiguates",
			names:     []string{"print", "preferences"},
			text:      "pri",
			wantMatch: "print",
			wantOK:    true,
		},
		{
			name:      "exact match beats longer names",
			names:     []string{"printer", "print"},
			text:      "print",
			wantMatch: "print",
			wantOK:    true,
		},
		{
			name:      "duplicates are not ambiguous",
			names:     []string{"full", "full", "name"},
			text:      "fu",
			wantMatch: "full",
			wantOK:    true,
		},
		{
			name:           "no candidates left",
			names:          []string{"print", "production"},
			text:           "px",
			wantCandidates: []string{},
		},
		{
			name:           "text longer than every name",
			names:          []string{"print"},
			text:           "printing",
			wantCandidates: []string{},
		},
		{
			name:           "p is ambiguous between print and production",
			names:          []string{"print", "production"},
			text:           "p",
			wantCandidates: []string{"print", "production"},
		},
		{
			name:           "empty text is unmatched",
			names:          []string{"print"},
			text:           "",
			wantCandidates: nil,
		},
		{
			name:      "empty text matches an empty name",
			names:     []string{"print", ""},
			text:      "",
			wantMatch: "",
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, candidates, ok := Resolve(tt.names, tt.text)
			if ok != tt.wantOK {
				t.Fatalf("Resolve() ok = %v, want %v", ok, tt.wantOK)
			}
			if match != tt.wantMatch {
				t.Errorf("Resolve() match = %q, want %q", match, tt.wantMatch)
			}
			if !ok {
				if diff := cmp.Diff(tt.wantCandidates, candidates, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("Resolve() candidates mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	names := []string{"print", "production", "preferences"}
	want := append([]string(nil), names...)
	Resolve(names, "pre")
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("input slice changed (-want +got):\n%s", diff)
	}
}

func TestAmbiguous(t *testing.T) {
	if Ambiguous(nil) || Ambiguous([]string{"a"}) {
		t.Error("zero or one candidate is not ambiguous")
	}
	if !Ambiguous([]string{"a", "b"}) {
		t.Error("two candidates are ambiguous")
	}
}
