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

	"github.com/looplab/fsm"
)

const (
	GraphGraphviz         = string(fsm.GRAPHVIZ)
	GraphMermaid          = string(fsm.MERMAID)
	GraphMermaidFlowChart = string(fsm.MermaidFlowChart)
)

// GraphFormats lists the diagram formats accepted by Graph.
func GraphFormats() []string {
	return []string{GraphGraphviz, GraphMermaid, GraphMermaidFlowChart}
}

// StateMachine builds a looplab/fsm machine equivalent to the descent table,
// positioned at current. Every (event, source) pair becomes its own event
// description since events like ChuteFailure lead to different states
// depending on where they are fired.
func (e *Engine) StateMachine(current State, callbacks fsm.Callbacks) *fsm.FSM {
	transitions := e.Transitions()
	events := make(fsm.Events, 0, len(transitions))
	for _, t := range transitions {
		events = append(events, fsm.EventDesc{
			Name: t.Event,
			Src:  []string{t.Src.String()},
			Dst:  t.Dst.String(),
		})
	}
	if callbacks == nil {
		callbacks = fsm.Callbacks{}
	}
	return fsm.NewFSM(current.String(), events, callbacks)
}

// Graph renders the transition table as diagram source, with the initial
// state highlighted.
func (e *Engine) Graph(format string) (string, error) {
	if format == "" {
		format = GraphGraphviz
	}
	out, err := fsm.VisualizeWithType(e.StateMachine(e.initial, nil), fsm.VisualizeType(format))
	if err != nil {
		return "", fmt.Errorf("cannot render transition graph: %w", err)
	}
	return out, nil
}
