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

// Package session runs one interactive descent: it owns the current state,
// reads events from an EventSource and writes the transcript.
package session

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AliceO2Group/Lander/common/logger"
	"github.com/AliceO2Group/Lander/core/landing"
	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
)

var log = logger.New(logrus.StandardLogger(), "session")

const (
	Banner        = "FSM Started..."
	DefaultPrompt = ">> "
)

type Outcome string

const (
	OutcomeTerminal       Outcome = "terminal"
	OutcomeInputExhausted Outcome = "input-exhausted"
)

// Summary describes a finished session.
type Summary struct {
	SessionID string
	Final     landing.State
	Outcome   Outcome
	Steps     int
	Accepted  int
	Rejected  int
}

type Option func(*Session)

// WithPrompt replaces the marker printed before each read. Interactive
// sources that draw their own prompt use an empty one.
func WithPrompt(prompt string) Option {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// WithStateFormatter controls how state names appear in the transcript,
// e.g. to colorize them.
func WithStateFormatter(format func(landing.State) string) Option {
	return func(s *Session) {
		if format != nil {
			s.formatState = format
		}
	}
}

type Session struct {
	id          string
	engine      *landing.Engine
	source      EventSource
	out         io.Writer
	prompt      string
	formatState func(landing.State) string
}

func New(engine *landing.Engine, source EventSource, out io.Writer, opts ...Option) *Session {
	Register()
	s := &Session{
		id:          xid.New().String(),
		engine:      engine,
		source:      source,
		out:         out,
		prompt:      DefaultPrompt,
		formatState: landing.DisplayName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

// Run drives the session until a terminal state is reached or the source
// runs dry. Rejected events are reported and never end the session. The
// returned error is only set when the source failed with something other
// than io.EOF; the summary is valid either way.
func (s *Session) Run() (Summary, error) {
	sessionLog := log.WithSession(s.id)
	current := s.engine.Initial()
	summary := Summary{SessionID: s.id}

	sessionLog.WithField("state", current).Debug("session started")
	fmt.Fprintln(s.out, Banner)

	for {
		fmt.Fprintf(s.out, "   Current State: %s\n", s.formatState(current))

		if s.engine.IsTerminal(current) {
			fmt.Fprintln(s.out, ">> Final state reached. Terminating.")
			return s.finish(summary, current, OutcomeTerminal), nil
		}

		available := s.engine.AvailableEvents(current)
		fmt.Fprintf(s.out, "   [Options: %s]\n", strings.Join(available, ", "))
		fmt.Fprint(s.out, s.prompt)

		event, err := s.source.NextEvent(available)
		if err != nil {
			// close the dangling prompt line
			fmt.Fprintln(s.out)
			summary = s.finish(summary, current, OutcomeInputExhausted)
			if errors.Is(err, io.EOF) {
				return summary, nil
			}
			return summary, fmt.Errorf("cannot read next event: %w", err)
		}
		summary.Steps++

		next, err := s.engine.NextState(current, event)
		if err != nil {
			summary.Rejected++
			EventCount.WithLabelValues("rejected").Inc()
			sessionLog.WithFields(logrus.Fields{
				"state": current,
				"event": event,
			}).Debug("event rejected")
			fmt.Fprintf(s.out, ">> Invalid event. Stayed in %s.\n", s.formatState(current))
			continue
		}

		summary.Accepted++
		EventCount.WithLabelValues("accepted").Inc()
		TransitionCount.WithLabelValues(current.String(), next.String()).Inc()
		sessionLog.WithFields(logrus.Fields{
			"state": current,
			"event": event,
			"dst":   next,
		}).Debug("transition")
		fmt.Fprintf(s.out, ">> Transitioned: %s -> %s\n", s.formatState(current), s.formatState(next))
		current = next
	}
}

func (s *Session) finish(summary Summary, final landing.State, outcome Outcome) Summary {
	summary.Final = final
	summary.Outcome = outcome
	SessionEndCount.WithLabelValues(string(outcome)).Inc()
	log.WithSession(s.id).WithFields(logrus.Fields{
		"state":    final,
		"outcome":  outcome,
		"steps":    summary.Steps,
		"rejected": summary.Rejected,
	}).Debug("session finished")
	return summary
}
