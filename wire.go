// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gateflow

// A Wire carries a boolean value from its source gate to its destination
// gates. A wire with no source gate is a primary input whose value is set
// externally via Circuit.SetInput.
type Wire struct {
	id     uint32
	value  bool
	prev   bool
	source *Gate
	dests  []*Gate
}

// ID returns the wire's stable identifier within its circuit.
func (w *Wire) ID() uint32 { return w.id }

// Value returns the wire's current value.
func (w *Wire) Value() bool { return w.value }

// Prev returns the wire's value before the last write.
func (w *Wire) Prev() bool { return w.prev }

// Changed reports whether the last write changed the wire's value.
func (w *Wire) Changed() bool { return w.value != w.prev }

// Source returns the gate driving this wire, or nil for a primary input.
func (w *Wire) Source() *Gate { return w.source }

// Destinations returns the gates reading this wire. This is a multiset: a
// gate reading the wire on two of its input pins appears twice. The
// returned slice must not be modified.
func (w *Wire) Destinations() []*Gate { return w.dests }

func (w *Wire) setValue(v bool) {
	w.prev = w.value
	w.value = v
}

func (w *Wire) addDestination(g *Gate) {
	w.dests = append(w.dests, g)
}

// removeDestination removes one occurrence of g from the destination list.
func (w *Wire) removeDestination(g *Gate) {
	for i, d := range w.dests {
		if d == g {
			w.dests = append(w.dests[:i], w.dests[i+1:]...)
			return
		}
	}
}
