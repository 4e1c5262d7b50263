// File: prefix.go
// Title: Abbreviation Resolver
// Description: Resolves an abbreviated name against a list of known names.
//              Command lookup and long option lookup both use it, so the two
//              follow the same rules for exact matches and ambiguity.
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

// Package prefix resolves abbreviations of command and option names.
package prefix

// Resolve looks text up in names.
//
// An exact match wins immediately, even when it is also a prefix of other
// names. Otherwise the candidate set starts as all distinct names and is
// narrowed one character of text at a time. If the set becomes empty there is
// no match; if more than one candidate is left once text is consumed, the
// abbreviation is ambiguous. On success ok is true and match holds the full
// name. On failure candidates lists the remaining names in their original
// order: empty means unknown, two or more means ambiguous.
//
// An empty text only matches an empty name.
func Resolve(names []string, text string) (match string, candidates []string, ok bool) {
	candidates = make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == text {
			return name, nil, true
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		candidates = append(candidates, name)
	}

	if text == "" {
		return "", nil, false
	}

	for i := 0; i < len(text) && len(candidates) > 0; i++ {
		narrowed := candidates[:0]
		for _, name := range candidates {
			if i < len(name) && name[i] == text[i] {
				narrowed = append(narrowed, name)
			}
		}
		candidates = narrowed
	}

	if len(candidates) == 1 {
		return candidates[0], nil, true
	}
	return "", candidates, false
}

// Ambiguous reports whether a failed Resolve was caused by ambiguity
func Ambiguous(candidates []string) bool {
	return len(candidates) > 1
}
