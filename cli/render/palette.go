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

// Package render draws the descent table for the terminal: colored state
// names, transition tables and state trees.
package render

import (
	"github.com/AliceO2Group/Lander/core/landing"
	"github.com/fatih/color"
)

// Palette colors state names by how the descent is going. A disabled palette
// returns plain names regardless of the terminal.
type Palette struct {
	enabled bool
	good    *color.Color
	warn    *color.Color
	bad     *color.Color
	grey    *color.Color
}

func NewPalette(enabled bool) *Palette {
	p := &Palette{
		enabled: enabled,
		good:    color.New(color.FgHiGreen),
		warn:    color.New(color.FgHiYellow),
		bad:     color.New(color.FgHiRed),
		grey:    color.New(color.FgWhite),
	}
	for _, c := range []*color.Color{p.good, p.warn, p.bad, p.grey} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *Palette) Enabled() bool {
	return p.enabled
}

func (p *Palette) State(s landing.State) string {
	switch s {
	case landing.Safe, landing.Finished:
		return p.good.Sprint(s)
	case landing.Crash, landing.BurnUp:
		return p.bad.Sprint(s)
	case landing.Cruise:
		return p.grey.Sprint(s)
	default:
		return p.warn.Sprint(s)
	}
}

// Good and Bad color arbitrary status text.
func (p *Palette) Good(text string) string {
	return p.good.Sprint(text)
}

func (p *Palette) Bad(text string) string {
	return p.bad.Sprint(text)
}
