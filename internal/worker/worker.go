// Package worker defines the task-execution contract the coordinator
// requires of every registered agent, plus the built-in reference agents.
//
// An agent declares a table of named operations at registration time.
// The dispatcher selects an operation by its declared kind and falls back
// to the generic entry when no specialized operation is present.
package worker

import (
	"context"
	"fmt"
)

// Kind names a class of operation an agent can declare.
type Kind string

const (
	// KindResearch covers search and information-gathering operations.
	KindResearch Kind = "research"
	// KindCode covers static-analysis operations.
	KindCode Kind = "code"
	// KindVisual covers chart and visualization operations.
	KindVisual Kind = "visual"
	// KindFinance covers market-data operations.
	KindFinance Kind = "finance"
	// KindAudio covers waveform and audio-feature operations.
	KindAudio Kind = "audio"
	// KindContent covers text-generation operations.
	KindContent Kind = "content"
	// KindGeneric is the fallback operation taking the raw task text.
	KindGeneric Kind = "generic"
)

// Valid returns true if the kind is a known value.
func (k Kind) Valid() bool {
	switch k {
	case KindResearch, KindCode, KindVisual, KindFinance, KindAudio,
		KindContent, KindGeneric:
		return true
	default:
		return false
	}
}

// Operation executes one task described as free text and returns an
// opaque payload or an error. Errors are converted to failed outcomes at
// the dispatch boundary, never propagated.
type Operation func(ctx context.Context, task string) (any, error)

// Table maps operation kinds to implementations for one agent.
// A nil Table is valid and selects nothing.
type Table struct {
	ops map[Kind]Operation
}

// NewTable creates an empty operation table.
func NewTable() *Table {
	return &Table{ops: make(map[Kind]Operation)}
}

// Register adds an operation under the given kind, replacing any
// previous entry for that kind.
func (t *Table) Register(kind Kind, op Operation) *Table {
	t.ops[kind] = op
	return t
}

// Select returns the operation declared for the given kind, falling back
// to the generic entry. Returns nil when neither is declared.
func (t *Table) Select(kind Kind) Operation {
	if t == nil {
		return nil
	}
	if op, ok := t.ops[kind]; ok {
		return op
	}
	return t.ops[KindGeneric]
}

// Kinds returns the declared kinds in unspecified order.
func (t *Table) Kinds() []Kind {
	if t == nil {
		return nil
	}
	kinds := make([]Kind, 0, len(t.ops))
	for k := range t.ops {
		kinds = append(kinds, k)
	}
	return kinds
}

// Echo returns a generic operation that acknowledges the task without
// doing domain work. Used as the fallback entry for agents whose
// specialized operations don't fit a task.
func Echo(agentName string) Operation {
	return func(_ context.Context, task string) (any, error) {
		return fmt.Sprintf("%s handled task: %s", agentName, task), nil
	}
}
