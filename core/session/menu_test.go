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
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// keystrokes feeds a prompt from memory. Terminal mode calls on its
// descriptor fail and are ignored by survey.
type keystrokes struct {
	io.Reader
}

func (keystrokes) Fd() uintptr {
	return ^uintptr(0)
}

type screen struct {
	bytes.Buffer
}

func (*screen) Fd() uintptr {
	return ^uintptr(0)
}

type failingKeyboard struct{}

func (failingKeyboard) Read([]byte) (int, error) {
	return 0, errors.New("keyboard unplugged")
}

func (failingKeyboard) Fd() uintptr {
	return ^uintptr(0)
}

func menuWith(in io.Reader) *MenuSource {
	return NewMenuSource(survey.WithStdio(keystrokes{in}, &screen{}, io.Discard))
}

var _ = Describe("MenuSource", func() {
	options := []string{"HeatShieldFailure", "StableDescend", "Turbulence"}

	It("ends the session when no event is legal", func() {
		_, err := NewMenuSource().NextEvent(nil)
		Expect(err).To(Equal(io.EOF))
	})

	It("picks the highlighted event on enter", func() {
		event, err := menuWith(strings.NewReader("\r")).NextEvent(options)
		Expect(err).NotTo(HaveOccurred())
		Expect(event).To(Equal("HeatShieldFailure"))
	})

	It("moves the selection with the arrow keys", func() {
		event, err := menuWith(strings.NewReader("\x1b[B\x1b[B\x1b[A\r")).NextEvent(options)
		Expect(err).NotTo(HaveOccurred())
		Expect(event).To(Equal("StableDescend"))
	})

	It("treats Ctrl-C as end of input", func() {
		_, err := menuWith(strings.NewReader("\x03")).NextEvent(options)
		Expect(err).To(Equal(io.EOF))
	})

	It("treats a closed terminal as end of input", func() {
		_, err := menuWith(strings.NewReader("")).NextEvent(options)
		Expect(err).To(Equal(io.EOF))
	})

	It("passes other terminal errors through", func() {
		m := NewMenuSource(survey.WithStdio(failingKeyboard{}, &screen{}, io.Discard))
		_, err := m.NextEvent(options)
		Expect(err).To(MatchError("keyboard unplugged"))
	})
})
