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

package landing

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// Validate checks the structural invariants of the transition table and
// returns every violation found, not just the first one.
func (e *Engine) Validate() error {
	var merr *multierror.Error

	names := make(map[string]State, stateCount)
	for _, s := range States() {
		name := s.String()
		if name == "" {
			merr = multierror.Append(merr, fmt.Errorf("state %d has an empty display name", int(s)))
		}
		if other, dup := names[name]; dup {
			merr = multierror.Append(merr, fmt.Errorf("states %d and %d share the display name %q", int(other), int(s), name))
		}
		names[name] = s

		if _, ok := e.table[s]; !ok {
			merr = multierror.Append(merr, fmt.Errorf("state %s is missing from the transition table", s))
		}
	}

	sources := make([]State, 0, len(e.table))
	for src := range e.table {
		sources = append(sources, src)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })

	for _, src := range sources {
		if !src.IsValid() {
			merr = multierror.Append(merr, fmt.Errorf("transition table has unknown source %s", src))
			continue
		}
		seen := make(map[string]struct{}, len(e.table[src]))
		for _, ed := range e.table[src] {
			if ed.event == "" {
				merr = multierror.Append(merr, fmt.Errorf("state %s has a transition with an empty event name", src))
			}
			if _, dup := seen[ed.event]; dup {
				merr = multierror.Append(merr, fmt.Errorf("state %s declares event %q more than once", src, ed.event))
			}
			seen[ed.event] = struct{}{}
			if !ed.dst.IsValid() {
				merr = multierror.Append(merr, fmt.Errorf("event %q of state %s leads to unknown %s", ed.event, src, ed.dst))
			}
		}
	}

	if !e.initial.IsValid() {
		merr = multierror.Append(merr, fmt.Errorf("initial state %s is unknown", e.initial))
	} else if e.IsTerminal(e.initial) {
		merr = multierror.Append(merr, fmt.Errorf("initial state %s is terminal", e.initial))
	}

	return merr.ErrorOrNil()
}
