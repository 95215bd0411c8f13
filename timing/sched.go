// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package timing replays an already-propagated circuit result depth by
// depth, so a renderer can show signals flowing through the network over
// time instead of appearing all at once.
//
// A Scheduler computes the topological depth of every gate when it is
// created, then advances a fractional "current depth" on each Tick. Gates
// and wires at or below the current depth are resolved; the fraction
// queries give smooth fade-in and wire-travel progress for animation.
// The underlying circuit values are never recomputed.
package timing

import (
	"math"

	"github.com/db47h/gateflow"
)

// A Mode selects how the scheduler advances on Tick.
type Mode uint8

// Playback modes.
const (
	Realtime Mode = iota // advance continuously by speed × dt
	Paused               // hold still unless a step is pending
)

func (m Mode) String() string {
	if m == Realtime {
		return "realtime"
	}
	return "paused"
}

// DefaultSpeed is the initial playback speed in depth-units per second.
const DefaultSpeed = 3.0

// A Scheduler tracks the animation progress of one finalized circuit. It
// holds non-owning references into the circuit's gate and wire set: after
// the circuit is rewritten by gateflow.DecomposeToNAND, a new Scheduler
// must be created.
type Scheduler struct {
	depths   map[*gateflow.Gate]int
	maxDepth int
	current  float64
	speed    float64
	mode     Mode
	stepReq  bool
}

// New creates a scheduler for a finalized circuit and computes the
// topological depth of every gate: 0 for gates fed only by primary inputs,
// otherwise 1 + the maximum depth of the gates feeding it.
func New(c *gateflow.Circuit) *Scheduler {
	s := &Scheduler{
		depths:  make(map[*gateflow.Gate]int, len(c.Gates())),
		current: -1,
		speed:   DefaultSpeed,
	}
	for _, g := range c.Order() {
		max := -1
		for _, w := range g.Inputs() {
			src := w.Source()
			if src == nil {
				continue
			}
			if d, ok := s.depths[src]; ok && d > max {
				max = d
			}
		}
		d := max + 1
		s.depths[g] = d
		if d > s.maxDepth {
			s.maxDepth = d
		}
	}
	return s
}

// Tick advances the animation by dt seconds. In Paused mode with no step
// pending it does nothing. A pending step advances the current depth to
// the next integer boundary, regardless of mode. Otherwise the current
// depth advances by speed × dt. The depth is clamped to MaxDepth()+1 so
// the last gates fully fade in.
func (s *Scheduler) Tick(dt float64) {
	if s.mode == Paused && !s.stepReq {
		return
	}

	if s.stepReq {
		target := float64(int(s.current) + 1)
		if s.current < 0 {
			target = 0
		}
		s.current = math.Min(target, float64(s.maxDepth)+1)
		s.stepReq = false
		return
	}

	s.current += s.speed * dt
	if s.current > float64(s.maxDepth)+1 {
		s.current = float64(s.maxDepth) + 1
	}
}

// Step requests a single advance to the next integer depth on the next
// Tick. Stepping always pauses continuous playback.
func (s *Scheduler) Step() {
	s.stepReq = true
	if s.mode == Realtime {
		s.mode = Paused
	}
}

// Reset rewinds the animation to before depth 0, discarding any pending
// step. The playback mode is unchanged.
func (s *Scheduler) Reset() {
	s.current = -1
	s.stepReq = false
}

// TogglePause flips between Realtime and Paused.
func (s *Scheduler) TogglePause() {
	if s.mode == Paused {
		s.mode = Realtime
	} else {
		s.mode = Paused
	}
}

// Mode returns the current playback mode.
func (s *Scheduler) Mode() Mode { return s.mode }

// SetMode sets the playback mode.
func (s *Scheduler) SetMode(m Mode) { s.mode = m }

// Speed returns the playback speed in depth-units per second.
func (s *Scheduler) Speed() float64 { return s.speed }

// SetSpeed sets the playback speed in depth-units per second.
func (s *Scheduler) SetSpeed(v float64) { s.speed = v }

// CurrentDepth returns the fractional animation depth. It starts at -1,
// meaning nothing is resolved yet.
func (s *Scheduler) CurrentDepth() float64 { return s.current }

// MaxDepth returns the largest gate depth in the circuit.
func (s *Scheduler) MaxDepth() int { return s.maxDepth }

// GateDepth returns the topological depth of g, or -1 if g is not part of
// the scheduler's circuit.
func (s *Scheduler) GateDepth(g *gateflow.Gate) int {
	if d, ok := s.depths[g]; ok {
		return d
	}
	return -1
}

// GateResolved reports whether the signal has reached g.
func (s *Scheduler) GateResolved(g *gateflow.Gate) bool {
	d, ok := s.depths[g]
	if !ok {
		return false
	}
	return s.current >= float64(d)
}

// WireResolved reports whether the signal carried by w has arrived. A
// primary input wire is resolved as soon as the animation starts.
func (s *Scheduler) WireResolved(w *gateflow.Wire) bool {
	src := w.Source()
	if src == nil {
		return s.current >= 0
	}
	return s.GateResolved(src)
}

// GateResolveFraction returns how far g is through its one-depth-unit
// fade-in: 0 before it resolves, up to 1 once fully resolved.
func (s *Scheduler) GateResolveFraction(g *gateflow.Gate) float64 {
	d, ok := s.depths[g]
	if !ok || s.current < float64(d) {
		return 0
	}
	return math.Min(s.current-float64(d), 1)
}

// WireSignalProgress returns how far the signal has traveled along w,
// from 0 to 1. Every wire takes exactly one depth-unit to traverse,
// independent of its real length or fan-out.
func (s *Scheduler) WireSignalProgress(w *gateflow.Wire) float64 {
	src := w.Source()
	if src == nil {
		if s.current < 0 {
			return 0
		}
		return math.Min(s.current+1, 1)
	}
	d, ok := s.depths[src]
	if !ok || s.current < float64(d) {
		return 0
	}
	return math.Min(s.current-float64(d), 1)
}

// Complete reports whether every gate and wire is fully resolved.
func (s *Scheduler) Complete() bool {
	return s.current >= float64(s.maxDepth)+1
}
