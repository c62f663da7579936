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

// Transition is one edge of the descent sequence.
type Transition struct {
	Src   State
	Event string
	Dst   State
}

// edge is a table entry; the source state is the table key.
type edge struct {
	event string
	dst   State
}

// table maps each source state to its outgoing edges, in the order the
// operator sees them as options.
type table map[State][]edge

var descentTable = table{
	Cruise: {
		{"EntryInterface", AtmosphericEntry},
	},
	AtmosphericEntry: {
		{"HeatShieldFailure", BurnUp},
		{"StableDescend", ParachuteDeploy},
		{"Turbulence", AtmosphericEntry},
	},
	ParachuteDeploy: {
		{"ChuteFailure", BackupChute},
		{"LowAltitude", PoweredDescent},
	},
	BackupChute: {
		{"ChuteFailure", Crash},
		{"LowAltitude", PoweredDescent},
	},
	PoweredDescent: {
		{"EngineFailure", Crash},
		{"FuelDepleted", Landing},
		{"Correction", PoweredDescent},
	},
	Landing: {
		{"Touchdown", Safe},
		{"TipOver", Crash},
	},
	Safe: {
		{"Shutdown", Finished},
	},
	// Crash is not terminal: a recovery attempt restarts the sequence.
	Crash: {
		{"RecoveryAttempt", Cruise},
	},
	BurnUp:   {},
	Finished: {},
}
