// File: service.go
// Title: Service State Management
// Description: Defines the service abstraction with enable/disable
//              state and change notification
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

// Package service models the shell's internal subsystems as named
// services that can be enabled and disabled at runtime. The watchdog
// and the service built-in command both operate on this abstraction.
package service

import (
	"sync"
)

// Service is an internal subsystem with a name and a switchable state.
type Service interface {
	// Name returns the stable service name.
	Name() string

	// Enabled reports whether the service currently accepts work.
	Enabled() bool

	// Enable switches the service on.
	Enable()

	// Disable switches the service off.
	Disable()
}

// State is the canonical Service implementation. Components embed a
// *State to become services. The zero value is not usable; create
// states with NewState.
type State struct {
	mu      sync.RWMutex
	name    string
	enabled bool
	notify  func(name string, enabled bool)
}

// NewState creates a service state with the given name and initial
// setting.
func NewState(name string, enabled bool) *State {
	return &State{name: name, enabled: enabled}
}

// Name returns the service name.
func (s *State) Name() string {
	return s.name
}

// Enabled reports whether the service is switched on.
func (s *State) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

// Enable switches the service on. The notification hook fires only on
// an actual transition.
func (s *State) Enable() {
	s.setEnabled(true)
}

// Disable switches the service off. The notification hook fires only
// on an actual transition.
func (s *State) Disable() {
	s.setEnabled(false)
}

// SetNotify installs a hook invoked after every state transition. The
// hook runs outside the state's lock.
func (s *State) SetNotify(fn func(name string, enabled bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify = fn
}

func (s *State) setEnabled(enabled bool) {
	s.mu.Lock()
	changed := s.enabled != enabled
	s.enabled = enabled
	notify := s.notify
	s.mu.Unlock()

	if changed && notify != nil {
		notify(s.name, enabled)
	}
}

// Status is a snapshot of one service for listings.
type Status struct {
	Name     string
	Enabled  bool
	Critical bool
}

// Set is a registry of services in registration order. It tracks which
// services are critical, meaning the watchdog restores them when they
// go down.
type Set struct {
	mu       sync.RWMutex
	order    []string
	services map[string]Service
	critical map[string]bool
}

// NewSet creates an empty service set.
func NewSet() *Set {
	return &Set{
		services: make(map[string]Service),
		critical: make(map[string]bool),
	}
}

// Add registers a service. Re-adding a name replaces the service but
// keeps its position.
func (s *Set) Add(svc Service, critical bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := svc.Name()
	if _, exists := s.services[name]; !exists {
		s.order = append(s.order, name)
	}
	s.services[name] = svc
	s.critical[name] = critical
}

// Lookup returns the named service.
func (s *Set) Lookup(name string) (Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	svc, ok := s.services[name]
	return svc, ok
}

// IsCritical reports whether the named service is critical.
func (s *Set) IsCritical(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.critical[name]
}

// List returns a snapshot of all services in registration order.
func (s *Set) List() []Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Status, 0, len(s.order))
	for _, name := range s.order {
		svc := s.services[name]
		out = append(out, Status{
			Name:     name,
			Enabled:  svc.Enabled(),
			Critical: s.critical[name],
		})
	}
	return out
}

// CriticalServices returns the critical services in registration
// order.
func (s *Set) CriticalServices() []Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Service, 0, len(s.order))
	for _, name := range s.order {
		if s.critical[name] {
			out = append(out, s.services[name])
		}
	}
	return out
}
