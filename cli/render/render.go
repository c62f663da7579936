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

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/AliceO2Group/Lander/core/landing"
	"github.com/olekukonko/tablewriter"
	"github.com/xlab/treeprint"
	"gopkg.in/yaml.v3"
)

const (
	OutputTable = "table"
	OutputYAML  = "yaml"
	OutputJSON  = "json"
)

// TransitionRecord is the serialized form of one table row.
type TransitionRecord struct {
	State       string `json:"state" yaml:"state"`
	Event       string `json:"event" yaml:"event"`
	Destination string `json:"destination" yaml:"destination"`
	Terminal    bool   `json:"terminal" yaml:"terminal"`
}

func transitionRecords(engine *landing.Engine) []TransitionRecord {
	transitions := engine.Transitions()
	records := make([]TransitionRecord, 0, len(transitions))
	for _, t := range transitions {
		records = append(records, TransitionRecord{
			State:       t.Src.String(),
			Event:       t.Event,
			Destination: t.Dst.String(),
			Terminal:    engine.IsTerminal(t.Dst),
		})
	}
	return records
}

// WriteTransitions writes the whole table in the requested output format.
func WriteTransitions(engine *landing.Engine, format string, p *Palette, o io.Writer) error {
	switch format {
	case "", OutputTable:
		drawTransitionTable(engine, p, o)
		return nil
	case OutputYAML:
		enc := yaml.NewEncoder(o)
		enc.SetIndent(2)
		if err := enc.Encode(transitionRecords(engine)); err != nil {
			return fmt.Errorf("cannot encode transitions as YAML: %w", err)
		}
		return enc.Close()
	case OutputJSON:
		enc := json.NewEncoder(o)
		enc.SetIndent("", "  ")
		if err := enc.Encode(transitionRecords(engine)); err != nil {
			return fmt.Errorf("cannot encode transitions as JSON: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

func drawTransitionTable(engine *landing.Engine, p *Palette, o io.Writer) {
	headers := []string{"state", "event", "destination", "terminal"}
	table := tablewriter.NewWriter(o)
	table.SetHeader(headers)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	if p.Enabled() {
		fg := tablewriter.Colors{tablewriter.Bold, tablewriter.FgYellowColor}
		fgColSlice := make([]tablewriter.Colors, len(headers))
		for i := range headers {
			fgColSlice[i] = fg
		}
		table.SetHeaderColor(fgColSlice...)
	}

	data := make([][]string, 0)
	for _, t := range engine.Transitions() {
		data = append(data, []string{
			p.State(t.Src),
			t.Event,
			p.State(t.Dst),
			strconv.FormatBool(engine.IsTerminal(t.Dst)),
		})
	}

	table.AppendBulk(data)
	table.Render()
}

// DrawStateTree prints every state with its outgoing events as a tree.
func DrawStateTree(engine *landing.Engine, p *Palette, o io.Writer) {
	tree := treeprint.New()
	tree.SetValue("descent sequence")
	tree.SetMetaValue("initial " + p.State(engine.Initial()))

	for _, s := range landing.States() {
		if engine.IsTerminal(s) {
			tree.AddMetaNode(p.Bad("terminal"), p.State(s))
			continue
		}
		branch := tree.AddBranch(p.State(s))
		for _, ev := range engine.AvailableEvents(s) {
			dst, _ := engine.NextState(s, ev)
			branch.AddNode(fmt.Sprintf("%s -> %s", ev, p.State(dst)))
		}
	}
	fmt.Fprint(o, tree.String())
}
