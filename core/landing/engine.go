/*
 * === This file is part of Lander ===
 *
 * Copyright 2026 the Lander authors.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

// Package landing implements the descent sequence state machine: a fixed
// set of states, a fixed transition table and the pure lookups the
// session loop is driven by.
package landing

import (
	"errors"
	"fmt"
)

// ErrRejected matches every RejectedTransitionError via errors.Is.
var ErrRejected = errors.New("transition rejected")

// RejectedTransitionError is returned by NextState when the event is not
// legal in the given state. It is an expected outcome, not a failure.
type RejectedTransitionError struct {
	State State
	Event string
}

func (e *RejectedTransitionError) Error() string {
	return fmt.Sprintf("event %q not accepted in state %s", e.Event, e.State)
}

func (e *RejectedTransitionError) Is(target error) bool {
	return target == ErrRejected
}

type Engine struct {
	table   table
	initial State
}

// NewEngine returns an engine over the built-in descent table.
func NewEngine() *Engine {
	return &Engine{
		table:   descentTable,
		initial: Initial,
	}
}

func (e *Engine) Initial() State {
	return e.initial
}

// AvailableEvents lists the events accepted in s, in table order. Terminal
// states yield an empty, non-nil slice.
func (e *Engine) AvailableEvents(s State) []string {
	edges := e.table[s]
	events := make([]string, 0, len(edges))
	for _, ed := range edges {
		events = append(events, ed.event)
	}
	return events
}

// IsTerminal reports whether s has no outgoing transitions.
func (e *Engine) IsTerminal(s State) bool {
	return len(e.table[s]) == 0
}

// NextState looks event up among the transitions out of s. On rejection the
// returned state is s itself, so callers may assign it unconditionally.
func (e *Engine) NextState(s State, event string) (State, error) {
	for _, ed := range e.table[s] {
		if ed.event == event {
			return ed.dst, nil
		}
	}
	return s, &RejectedTransitionError{State: s, Event: event}
}

// Transitions flattens the table: states in declaration order, events in
// table order.
func (e *Engine) Transitions() []Transition {
	var out []Transition
	for _, src := range States() {
		for _, ed := range e.table[src] {
			out = append(out, Transition{Src: src, Event: ed.event, Dst: ed.dst})
		}
	}
	return out
}
