// ============================================================================
// soarcli - Soar command interpreter
// ============================================================================
//
// Package:     kernel
// Description: In-memory stand-in for the cognitive architecture kernel.
//              It stores productions and the trace level so the built-in
//              commands have real state to act on.
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package kernel

import (
	"sort"
	"strings"
	"sync"
	"time"

	mdwerror "github.com/SoarGroup/soarcli/foundation/core/error"
)

// Watch level bounds
const (
	MinWatchLevel     = 0
	MaxWatchLevel     = 5
	DefaultWatchLevel = 1
)

// Production is a rule loaded into the agent
type Production struct {
	Name     string
	Body     string
	LoadedAt time.Time
}

// Agent holds kernel state. It is safe for concurrent use.
type Agent struct {
	name        string
	mu          sync.RWMutex
	productions map[string]*Production
	watchLevel  int
}

// NewAgent creates an empty agent
func NewAgent(name string) *Agent {
	if name == "" {
		name = "soar"
	}
	return &Agent{
		name:        name,
		productions: make(map[string]*Production),
		watchLevel:  DefaultWatchLevel,
	}
}

// Name returns the agent name
func (a *Agent) Name() string {
	return a.name
}

// AddProduction loads a production. The first word of body is its name and
// the body must contain the "-->" separator between conditions and actions.
// An existing production of the same name is replaced.
func (a *Agent) AddProduction(body string) (name string, replaced bool, err error) {
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return "", false, mdwerror.New("production body is empty").
			WithCode(mdwerror.CodeInvalidArgument).
			WithOperation("kernel.AddProduction")
	}
	name = fields[0]
	if !strings.Contains(body, "-->") {
		return "", false, mdwerror.Newf("production %s has no --> separator", name).
			WithCode(mdwerror.CodeInvalidArgument).
			WithOperation("kernel.AddProduction").
			WithDetail("production", name)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	_, replaced = a.productions[name]
	a.productions[name] = &Production{
		Name:     name,
		Body:     strings.TrimSpace(body),
		LoadedAt: time.Now(),
	}
	return name, replaced, nil
}

// Production returns a copy of the named production
func (a *Agent) Production(name string) (Production, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	p, ok := a.productions[name]
	if !ok {
		return Production{}, false
	}
	return *p, true
}

// Productions returns all productions ordered by name
func (a *Agent) Productions() []Production {
	a.mu.RLock()
	defer a.mu.RUnlock()

	result := make([]Production, 0, len(a.productions))
	for _, p := range a.productions {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// ProductionCount returns the number of loaded productions
func (a *Agent) ProductionCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.productions)
}

// Excise removes a production
func (a *Agent) Excise(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.productions[name]; !ok {
		return mdwerror.Newf("no production named %s", name).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("kernel.Excise").
			WithDetail("production", name)
	}
	delete(a.productions, name)
	return nil
}

// ExciseAll removes every production and returns how many there were
func (a *Agent) ExciseAll() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := len(a.productions)
	a.productions = make(map[string]*Production)
	return n
}

// SetWatchLevel sets the trace level
func (a *Agent) SetWatchLevel(level int) error {
	if level < MinWatchLevel || level > MaxWatchLevel {
		return mdwerror.Newf("watch level must be between %d and %d", MinWatchLevel, MaxWatchLevel).
			WithCode(mdwerror.CodeInvalidArgument).
			WithOperation("kernel.SetWatchLevel").
			WithDetail("level", level)
	}

	a.mu.Lock()
	a.watchLevel = level
	a.mu.Unlock()
	return nil
}

// WatchLevel returns the trace level
func (a *Agent) WatchLevel() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.watchLevel
}
