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
	"context"
	"fmt"
	"strings"

	"github.com/looplab/fsm"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("looplab/fsm mirror of the descent table", func() {
	var engine *Engine
	BeforeEach(func() {
		engine = NewEngine()
	})

	It("is positioned at the requested state", func() {
		Expect(engine.StateMachine(Cruise, nil).Current()).To(Equal("Cruise"))
		Expect(engine.StateMachine(Landing, nil).Current()).To(Equal("Landing"))
	})

	It("agrees with NextState on every state and event", func() {
		sm := engine.StateMachine(Cruise, nil)
		var events []string
		for _, t := range engine.Transitions() {
			events = append(events, t.Event)
		}
		for _, s := range States() {
			sm.SetState(s.String())
			for _, ev := range events {
				_, err := engine.NextState(s, ev)
				Expect(sm.Can(ev)).To(Equal(err == nil), "%s/%s", s, ev)
			}
		}
	})

	When("the machine is in BackupChute", func() {
		It("should allow for ChuteFailure and LowAltitude", func() {
			sm := engine.StateMachine(BackupChute, nil)
			Expect(sm.Can("ChuteFailure")).To(BeTrue())
			Expect(sm.Can("LowAltitude")).To(BeTrue())
			Expect(sm.Cannot("RecoveryAttempt")).To(BeTrue())
		})

		It("should crash on a second chute failure", func() {
			var entered []string
			sm := engine.StateMachine(BackupChute, fsm.Callbacks{
				"enter_state": func(_ context.Context, e *fsm.Event) {
					entered = append(entered, e.Dst)
				},
			})
			Expect(sm.Event(context.Background(), "ChuteFailure")).To(Succeed())
			Expect(sm.Current()).To(Equal("Crash"))
			Expect(entered).To(Equal([]string{"Crash"}))
		})
	})

	Describe("graph export", func() {
		It("emits one graphviz edge per transition", func() {
			out, err := engine.Graph(GraphGraphviz)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HavePrefix("digraph fsm {"))
			for _, t := range engine.Transitions() {
				Expect(out).To(ContainSubstring(fmt.Sprintf(`"%s" -> "%s" [ label = "%s" ];`, t.Src, t.Dst, t.Event)))
			}
			Expect(strings.Count(out, " -> ")).To(Equal(len(engine.Transitions())))
			Expect(out).To(ContainSubstring(`"Cruise" [color = "red"];`))
		})

		It("defaults to graphviz", func() {
			def, err := engine.Graph("")
			Expect(err).NotTo(HaveOccurred())
			gv, _ := engine.Graph(GraphGraphviz)
			Expect(def).To(Equal(gv))
		})

		It("renders mermaid diagrams", func() {
			out, err := engine.Graph(GraphMermaid)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("stateDiagram"))
			Expect(out).To(ContainSubstring("Crash --> Cruise: RecoveryAttempt"))

			out, err = engine.Graph(GraphMermaidFlowChart)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("graph LR"))
		})

		It("rejects unknown formats", func() {
			_, err := engine.Graph("svg")
			Expect(err).To(HaveOccurred())
		})
	})
})
