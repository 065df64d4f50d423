// File: registry.go
// Title: Command Registry
// Description: Stores command definitions, manages alias groups and
//              the registration set
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

// Package registry stores command definitions and decides which of
// them are callable. A definition and its alias always travel as one
// group: registering, unregistering or disabling one affects both.
// Defined but unregistered commands are invisible to lookup.
package registry

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/msto63/mShell/command"
	msherror "github.com/msto63/mShell/core/error"
	"github.com/msto63/mShell/core/log"
	"github.com/msto63/mShell/service"
)

// Invocation carries the verified inputs of one fragment run.
type Invocation struct {
	// Args are the positional arguments as parsed.
	Args []string

	// Flags are the verified, coerced and normalized flags.
	Flags command.Flags

	// Pipe is the previous fragment's output, nil for the first
	// fragment of a chain.
	Pipe []command.Line
}

// Handler runs one fragment. Expected failures are returned through
// the result's failure variant; a panic is treated as a fault in the
// shell itself.
type Handler func(ctx context.Context, inv Invocation) command.Result

// ParamKind discriminates positional parameters from flags.
type ParamKind int

const (
	// Positional parameters consume arguments in schema order.
	Positional ParamKind = iota

	// Flag parameters are matched by long or short name.
	Flag
)

// Param describes one schema parameter of a command.
type Param struct {
	// Kind selects positional or flag matching.
	Kind ParamKind

	// Name is the canonical (long) parameter name.
	Name string

	// Short is the optional one-letter flag name.
	Short string

	// Required fails verification when the parameter is absent.
	Required bool

	// Type is the declared datatype. HasType records whether it was
	// declared at all; a flag parameter without a declared type is a
	// definition defect.
	Type    command.ValueKind
	HasType bool

	// Allowed restricts a positional parameter to a value set.
	Allowed []string

	// PipeFrom names a command whose output this parameter can accept
	// through the pipe. Informational for handlers; verification does
	// not exempt such parameters from the required check.
	PipeFrom string

	// Default is injected during normalization when the flag was not
	// supplied.
	Default *command.Value
}

// Definition describes one command: identity, schema and handler.
type Definition struct {
	Name        string
	Description string

	// Hidden excludes the command from listings. It remains callable.
	Hidden bool

	// Alias declares a secondary name sharing schema and handler.
	Alias string

	Params  []Param
	Handler Handler

	aliasOf string
}

// AliasOf returns the canonical name when this definition is an alias
// clone, and the empty string otherwise.
func (d *Definition) AliasOf() string {
	return d.aliasOf
}

// clone copies the definition deeply enough that callers cannot
// corrupt registry state through it.
func (d *Definition) clone() *Definition {
	c := *d
	c.Params = make([]Param, len(d.Params))
	copy(c.Params, d.Params)
	for i := range c.Params {
		if len(c.Params[i].Allowed) > 0 {
			c.Params[i].Allowed = append([]string(nil), c.Params[i].Allowed...)
		}
		if c.Params[i].Default != nil {
			def := *c.Params[i].Default
			c.Params[i].Default = &def
		}
	}
	return &c
}

// EventRecorder receives lifecycle events for the diagnostics log.
type EventRecorder interface {
	Record(action string)
}

// nopRecorder discards events.
type nopRecorder struct{}

func (nopRecorder) Record(string) {}

// Registry is the command store. It is itself a service named
// "commandregistry"; while disabled, every lookup misses.
type Registry struct {
	*service.State

	mu      sync.RWMutex
	defs    map[string]*Definition
	groups  map[string]string
	enabled map[string]bool

	recorder EventRecorder
	logger   *log.Logger
}

// New creates an empty, enabled registry. Nil collaborators fall back
// to defaults.
func New(logger *log.Logger, recorder EventRecorder) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Registry{
		State:    service.NewState("commandregistry", true),
		defs:     make(map[string]*Definition),
		groups:   make(map[string]string),
		enabled:  make(map[string]bool),
		recorder: recorder,
		logger:   logger.WithName("registry"),
	}
}

// normalize canonicalizes a command name for storage and lookup.
func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Define stores a definition. A declared alias is cloned under its
// own name, stamped with the canonical name. Redefining a command
// replaces it and detaches any previous alias.
func (r *Registry) Define(def *Definition) error {
	if def == nil || normalize(def.Name) == "" {
		return msherror.New("command definition lacks a name").
			WithCode(msherror.CodeBadDefinition)
	}
	if def.Handler == nil {
		return msherror.Newf("command %s lacks a handler", def.Name).
			WithCode(msherror.CodeBadDefinition)
	}

	name := normalize(def.Name)
	alias := normalize(def.Alias)
	if alias == name {
		alias = ""
	}

	stored := def.clone()
	stored.Name = name
	stored.Alias = alias
	stored.aliasOf = ""

	r.mu.Lock()
	if prev, ok := r.defs[name]; ok && prev.Alias != "" && prev.Alias != alias {
		delete(r.defs, prev.Alias)
		delete(r.groups, prev.Alias)
	}
	r.defs[name] = stored
	r.groups[name] = name
	if alias != "" {
		cloned := stored.clone()
		cloned.Name = alias
		cloned.Alias = ""
		cloned.aliasOf = name
		r.defs[alias] = cloned
		r.groups[alias] = name
	}
	r.mu.Unlock()

	r.recorder.Record("define " + name)
	r.logger.Debug("command defined",
		log.String("command", name), log.String("alias", alias))
	return nil
}

// Register adds a command's group to the registration set. It is
// idempotent.
func (r *Registry) Register(name string) error {
	group, err := r.groupOf(name)
	if err != nil {
		return err
	}

	r.mu.Lock()
	already := r.enabled[group]
	r.enabled[group] = true
	r.mu.Unlock()

	if !already {
		r.recorder.Record("register " + group)
	}
	return nil
}

// Unregister removes a command's group from the registration set. It
// is idempotent.
func (r *Registry) Unregister(name string) error {
	group, err := r.groupOf(name)
	if err != nil {
		return err
	}

	r.mu.Lock()
	was := r.enabled[group]
	delete(r.enabled, group)
	r.mu.Unlock()

	if was {
		r.recorder.Record("unregister " + group)
	}
	return nil
}

// groupOf resolves any name (canonical or alias) to its group.
func (r *Registry) groupOf(name string) (string, error) {
	r.mu.RLock()
	group, ok := r.groups[normalize(name)]
	r.mu.RUnlock()
	if !ok {
		return "", msherror.Newf("unknown command: %s", normalize(name)).
			WithCode(msherror.CodeUnknownCommand)
	}
	return group, nil
}

// IsRegistered reports whether the command's group is in the
// registration set.
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	group, ok := r.groups[normalize(name)]
	return ok && r.enabled[group]
}

// Lookup returns the definition for a registered name. Disabled or
// merely defined commands are invisible, as is everything while the
// registry service itself is disabled.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	if !r.Enabled() {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	key := normalize(name)
	group, ok := r.groups[key]
	if !ok || !r.enabled[group] {
		return nil, false
	}
	def, ok := r.defs[key]
	if !ok {
		return nil, false
	}
	return def.clone(), true
}

// Names returns the sorted canonical names of registered commands.
// Alias clones are folded into their canonical entry. Hidden commands
// appear only when includeHidden is set.
func (r *Registry) Names(includeHidden bool) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.defs))
	for name, def := range r.defs {
		if def.aliasOf != "" || !r.enabled[name] {
			continue
		}
		if def.Hidden && !includeHidden {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// unregisterDefect drops a defective command's group and records the
// rejection. Used by verification when a definition defect surfaces.
func (r *Registry) unregisterDefect(name string) {
	r.mu.Lock()
	group, ok := r.groups[normalize(name)]
	if ok {
		delete(r.enabled, group)
	}
	r.mu.Unlock()

	if ok {
		r.recorder.Record("unregister " + group)
		r.logger.Warn("defective command unregistered",
			log.String("command", group))
	}
}
