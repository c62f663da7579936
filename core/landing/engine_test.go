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
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// drive applies events the way the session loop does: rejected events leave
// the state unchanged and are counted.
func drive(engine *Engine, from State, events ...string) (current State, rejected int) {
	current = from
	for _, ev := range events {
		next, err := engine.NextState(current, ev)
		if errors.Is(err, ErrRejected) {
			rejected++
		}
		current = next
	}
	return current, rejected
}

var _ = Describe("descent engine", func() {
	var engine *Engine
	BeforeEach(func() {
		engine = NewEngine()
	})

	It("starts in Cruise", func() {
		Expect(engine.Initial()).To(Equal(Cruise))
		Expect(State(0)).To(Equal(Cruise))
	})

	DescribeTable("accepted transitions",
		func(src State, event string, dst State) {
			next, err := engine.NextState(src, event)
			Expect(err).NotTo(HaveOccurred())
			Expect(next).To(Equal(dst))
		},
		Entry(nil, Cruise, "EntryInterface", AtmosphericEntry),
		Entry(nil, AtmosphericEntry, "HeatShieldFailure", BurnUp),
		Entry(nil, AtmosphericEntry, "StableDescend", ParachuteDeploy),
		Entry(nil, AtmosphericEntry, "Turbulence", AtmosphericEntry),
		Entry(nil, ParachuteDeploy, "ChuteFailure", BackupChute),
		Entry(nil, ParachuteDeploy, "LowAltitude", PoweredDescent),
		Entry(nil, BackupChute, "ChuteFailure", Crash),
		Entry(nil, BackupChute, "LowAltitude", PoweredDescent),
		Entry(nil, PoweredDescent, "EngineFailure", Crash),
		Entry(nil, PoweredDescent, "FuelDepleted", Landing),
		Entry(nil, PoweredDescent, "Correction", PoweredDescent),
		Entry(nil, Landing, "Touchdown", Safe),
		Entry(nil, Landing, "TipOver", Crash),
		Entry(nil, Safe, "Shutdown", Finished),
		Entry(nil, Crash, "RecoveryAttempt", Cruise),
	)

	It("lists exactly the accepted transitions", func() {
		Expect(engine.Transitions()).To(HaveLen(15))
		Expect(engine.Transitions()[0]).To(Equal(Transition{Src: Cruise, Event: "EntryInterface", Dst: AtmosphericEntry}))
	})

	When("an event is not legal for the state", func() {
		It("rejects every event known elsewhere in the table", func() {
			known := map[string]struct{}{}
			for _, t := range engine.Transitions() {
				known[t.Event] = struct{}{}
			}
			for _, s := range States() {
				legal := map[string]struct{}{}
				for _, ev := range engine.AvailableEvents(s) {
					legal[ev] = struct{}{}
				}
				for ev := range known {
					if _, ok := legal[ev]; ok {
						continue
					}
					next, err := engine.NextState(s, ev)
					Expect(err).To(HaveOccurred(), "%s/%s", s, ev)
					Expect(errors.Is(err, ErrRejected)).To(BeTrue())
					Expect(next).To(Equal(s))
				}
			}
		})

		It("rejects empty and case-mismatched events", func() {
			for _, s := range States() {
				_, err := engine.NextState(s, "")
				Expect(errors.Is(err, ErrRejected)).To(BeTrue())
			}
			_, err := engine.NextState(Cruise, "entryinterface")
			Expect(errors.Is(err, ErrRejected)).To(BeTrue())
			_, err = engine.NextState(Safe, "SHUTDOWN")
			Expect(errors.Is(err, ErrRejected)).To(BeTrue())
		})

		It("keeps Safe when Touchdown is sent", func() {
			next, err := engine.NextState(Safe, "Touchdown")
			var rejected *RejectedTransitionError
			Expect(errors.As(err, &rejected)).To(BeTrue())
			Expect(rejected.State).To(Equal(Safe))
			Expect(rejected.Event).To(Equal("Touchdown"))
			Expect(next).To(Equal(Safe))
			Expect(err.Error()).To(Equal(`event "Touchdown" not accepted in state Safe`))
		})

		It("rejects everything in terminal states", func() {
			for _, s := range []State{BurnUp, Finished} {
				_, err := engine.NextState(s, "RecoveryAttempt")
				Expect(errors.Is(err, ErrRejected)).To(BeTrue())
			}
		})
	})

	Describe("terminal states", func() {
		It("are exactly BurnUp and Finished", func() {
			for _, s := range States() {
				Expect(engine.IsTerminal(s)).To(Equal(s == BurnUp || s == Finished), s.String())
			}
		})

		It("have no available events, and only they", func() {
			for _, s := range States() {
				Expect(engine.AvailableEvents(s) == nil).To(BeFalse())
				Expect(len(engine.AvailableEvents(s)) == 0).To(Equal(engine.IsTerminal(s)), s.String())
			}
		})

		It("does not treat Crash as terminal", func() {
			Expect(engine.IsTerminal(Crash)).To(BeFalse())
		})
	})

	It("lists available events in table order", func() {
		Expect(engine.AvailableEvents(AtmosphericEntry)).To(Equal([]string{"HeatShieldFailure", "StableDescend", "Turbulence"}))
		Expect(engine.AvailableEvents(PoweredDescent)).To(Equal([]string{"EngineFailure", "FuelDepleted", "Correction"}))
		Expect(engine.AvailableEvents(Finished)).To(BeEmpty())
	})

	Describe("event sequences", func() {
		It("burns up on heat shield failure", func() {
			end, rejected := drive(engine, Cruise, "EntryInterface", "HeatShieldFailure")
			Expect(rejected).To(BeZero())
			Expect(end).To(Equal(BurnUp))
			Expect(engine.IsTerminal(end)).To(BeTrue())
		})

		It("cycles from Crash back to Cruise", func() {
			// The second ChuteFailure already lands in Crash, where EngineFailure
			// is rejected before the recovery attempt.
			end, rejected := drive(engine, Cruise,
				"EntryInterface", "StableDescend", "ChuteFailure", "ChuteFailure", "EngineFailure", "RecoveryAttempt")
			Expect(rejected).To(Equal(1))
			Expect(end).To(Equal(Cruise))
			Expect(engine.IsTerminal(end)).To(BeFalse())

			end, rejected = drive(engine, Cruise,
				"EntryInterface", "StableDescend", "ChuteFailure", "ChuteFailure", "RecoveryAttempt")
			Expect(rejected).To(BeZero())
			Expect(end).To(Equal(Cruise))
			Expect(engine.IsTerminal(end)).To(BeFalse())
		})

		It("lands and shuts down", func() {
			end, rejected := drive(engine, Cruise,
				"EntryInterface", "StableDescend", "LowAltitude", "FuelDepleted", "Touchdown", "Shutdown")
			Expect(rejected).To(BeZero())
			Expect(end).To(Equal(Finished))
			Expect(engine.IsTerminal(end)).To(BeTrue())
		})

		It("stays put on self-loops", func() {
			next, err := engine.NextState(AtmosphericEntry, "Turbulence")
			Expect(err).NotTo(HaveOccurred())
			Expect(next).To(Equal(AtmosphericEntry))
			next, err = engine.NextState(PoweredDescent, "Correction")
			Expect(err).NotTo(HaveOccurred())
			Expect(next).To(Equal(PoweredDescent))
		})
	})
})
