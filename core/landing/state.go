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
)

// State is a mode of the descent sequence. The zero value is Cruise, the
// initial state of every session.
type State int

const (
	Cruise State = iota
	AtmosphericEntry
	ParachuteDeploy
	BackupChute
	PoweredDescent
	Landing
	Safe
	Crash
	BurnUp
	Finished

	stateCount int = iota
)

const Initial = Cruise

// States returns every state in declaration order.
func States() []State {
	out := make([]State, stateCount)
	for i := range out {
		out[i] = State(i)
	}
	return out
}

func (s State) IsValid() bool {
	return s >= 0 && int(s) < stateCount
}

// String returns the display name of the state.
func (s State) String() string {
	switch s {
	case Cruise:
		return "Cruise"
	case AtmosphericEntry:
		return "AtmosphericEntry"
	case ParachuteDeploy:
		return "ParachuteDeploy"
	case BackupChute:
		return "BackupChute"
	case PoweredDescent:
		return "PoweredDescent"
	case Landing:
		return "Landing"
	case Safe:
		return "Safe"
	case Crash:
		return "Crash"
	case BurnUp:
		return "BurnUp"
	case Finished:
		return "Finished"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// DisplayName is the human readable name used in transcripts and logs.
func DisplayName(s State) string {
	return s.String()
}

// ParseState is the inverse of String. Matching is case-sensitive.
func ParseState(name string) (State, error) {
	for _, s := range States() {
		if s.String() == name {
			return s, nil
		}
	}
	return Cruise, fmt.Errorf("unknown state %q", name)
}

func (s State) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid state %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
