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

package session

import (
	"errors"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// MenuSource lets the operator pick among the legal events from an
// interactive list instead of typing them.
type MenuSource struct {
	message string
	opts    []survey.AskOpt
}

func NewMenuSource(opts ...survey.AskOpt) *MenuSource {
	return &MenuSource{
		message: "Event:",
		opts:    opts,
	}
}

func (m *MenuSource) NextEvent(available []string) (string, error) {
	if len(available) == 0 {
		return "", io.EOF
	}
	prompt := &survey.Select{
		Message:  m.message,
		Options:  available,
		PageSize: len(available),
	}
	var choice string
	if err := survey.AskOne(prompt, &choice, m.opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", err
	}
	return choice, nil
}
