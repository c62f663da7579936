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
	"fmt"
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const (
	Namespace = "lander"
	Subsystem = "session"
)

var (
	EventCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "events_total",
		Help:      "The number of events read from the operator, by outcome.",
	}, []string{"outcome"})
	TransitionCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "transitions_total",
		Help:      "The number of accepted transitions, by source and destination state.",
	}, []string{"src", "dst"})
	SessionEndCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "ends_total",
		Help:      "The number of finished sessions, by outcome.",
	}, []string{"outcome"})
)

// Registry is private to the session so the dump only carries lander
// metrics, not the Go runtime collectors of the default registry.
var Registry = prometheus.NewRegistry()

var registerMetrics sync.Once

func Register() {
	registerMetrics.Do(func() {
		Registry.MustRegister(EventCount)
		Registry.MustRegister(TransitionCount)
		Registry.MustRegister(SessionEndCount)
	})
}

// WriteMetrics writes the current counters in the Prometheus text format.
func WriteMetrics(w io.Writer) error {
	Register()
	families, err := Registry.Gather()
	if err != nil {
		return fmt.Errorf("cannot gather session metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("cannot write session metrics: %w", err)
		}
	}
	return nil
}
