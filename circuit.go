// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gateflow

import (
	"github.com/pkg/errors"
)

// A ChangeSet lists the gates and wires whose value changed during a call
// to Propagate.
type ChangeSet struct {
	Gates []*Gate
	Wires []*Wire
}

// A Circuit owns every gate and wire of a combinational logic network and
// runs the simulation over them. Entities are allocated with AddGate and
// AddWire, wired up with Connect, and remain valid for the lifetime of the
// circuit. After Finalize succeeds, Propagate evaluates the whole network
// in topological order.
type Circuit struct {
	gates     []*Gate
	wires     []*Wire
	inputs    []*Wire // primary inputs, index = external bit position
	outputs   []*Wire // primary outputs, index = external bit position
	order     []*Gate // topological order, valid after Finalize
	finalized bool
}

// New returns an empty circuit.
func New() *Circuit {
	return &Circuit{}
}

// AddGate allocates a new gate of type t in the circuit.
func (c *Circuit) AddGate(t Type) *Gate {
	g := &Gate{id: uint32(len(c.gates)), typ: t, dirty: true}
	c.gates = append(c.gates, g)
	return g
}

// AddWire allocates a new wire in the circuit.
func (c *Circuit) AddWire() *Wire {
	w := &Wire{id: uint32(len(c.wires))}
	c.wires = append(c.wires, w)
	return w
}

// Connect wires up w with an optional source and destination gate. If src
// is non-nil, w becomes the output of src; a wire's source and a gate's
// output, once set, cannot be changed. If dst is non-nil, w is appended to
// dst's ordered input list; connecting the same wire to the same gate more
// than once is legitimate (the gate reads the wire on several pins).
func (c *Circuit) Connect(w *Wire, src, dst *Gate) error {
	if w == nil {
		return ErrNilWire
	}
	if src != nil {
		if w.source != nil && w.source != src {
			return errors.Wrapf(ErrSourceConflict, "wire %d", w.id)
		}
		if src.output != nil && src.output != w {
			return errors.Wrapf(ErrOutputConflict, "gate %d", src.id)
		}
		w.source = src
		src.output = w
	}
	if dst != nil {
		w.addDestination(dst)
		dst.addInput(w)
	}
	return nil
}

// MarkInput registers w as the next primary input; the order of MarkInput
// calls defines the external bit positions.
func (c *Circuit) MarkInput(w *Wire) {
	c.inputs = append(c.inputs, w)
}

// MarkOutput registers w as the next primary output; the order of
// MarkOutput calls defines the external bit positions.
func (c *Circuit) MarkOutput(w *Wire) {
	c.outputs = append(c.outputs, w)
}

// Finalize validates the circuit's connectivity and computes the
// topological evaluation order using Kahn's algorithm. It fails with
// ErrConnectivity if gate input lists and wire destination lists do not
// mirror each other, and with ErrCycle if the gate dependency graph is not
// a DAG. Propagate requires a successful Finalize.
func (c *Circuit) Finalize() error {
	if err := c.validate(); err != nil {
		return err
	}

	// in-degree counts only input wires fed by another gate; primary
	// inputs contribute zero.
	indeg := make(map[*Gate]int, len(c.gates))
	for _, g := range c.gates {
		n := 0
		for _, w := range g.inputs {
			if w.source != nil {
				n++
			}
		}
		indeg[g] = n
	}

	queue := make([]*Gate, 0, len(c.gates))
	for _, g := range c.gates {
		if indeg[g] == 0 {
			queue = append(queue, g)
		}
	}

	order := make([]*Gate, 0, len(c.gates))
	for len(queue) > 0 {
		g := queue[0]
		queue = queue[1:]
		order = append(order, g)
		if g.output == nil {
			continue
		}
		for _, d := range g.output.dests {
			indeg[d]--
			if indeg[d] == 0 {
				queue = append(queue, d)
			}
		}
	}

	if len(order) != len(c.gates) {
		return errors.Wrapf(ErrCycle, "ordered %d of %d gates", len(order), len(c.gates))
	}

	c.order = order
	c.finalized = true
	return nil
}

// validate checks that every (wire, gate) link is mirrored on both sides,
// counting occurrences: a gate reading a wire on two pins needs two
// matching entries in the wire's destination list, and vice versa.
func (c *Circuit) validate() error {
	for _, g := range c.gates {
		if g.output != nil && g.output.source != g {
			return errors.Wrapf(ErrConnectivity, "gate %d: output wire source mismatch", g.id)
		}

		counts := make(map[*Wire]int, len(g.inputs))
		for _, w := range g.inputs {
			if w == nil {
				return errors.Wrapf(ErrConnectivity, "gate %d: nil input wire", g.id)
			}
			counts[w]++
		}
		for w, want := range counts {
			got := 0
			for _, d := range w.dests {
				if d == g {
					got++
				}
			}
			if got < want {
				return errors.Wrapf(ErrConnectivity,
					"gate %d input wire %d: %d occurrence(s) on the gate side, %d on the wire side",
					g.id, w.id, want, got)
			}
		}
	}

	for _, w := range c.wires {
		if w.source != nil && w.source.output != w {
			return errors.Wrapf(ErrConnectivity, "wire %d: source gate does not drive it", w.id)
		}

		counts := make(map[*Gate]int, len(w.dests))
		for _, d := range w.dests {
			if d == nil {
				return errors.Wrapf(ErrConnectivity, "wire %d: nil destination gate", w.id)
			}
			counts[d]++
		}
		for d, want := range counts {
			got := 0
			for _, in := range d.inputs {
				if in == w {
					got++
				}
			}
			if got < want {
				return errors.Wrapf(ErrConnectivity,
					"wire %d destination gate %d: %d occurrence(s) on the wire side, %d on the gate side",
					w.id, d.id, want, got)
			}
		}
	}
	return nil
}

// SetInput sets the value of the index-th primary input wire.
func (c *Circuit) SetInput(index int, value bool) error {
	if !c.finalized {
		return errors.Wrap(ErrNotFinalized, "SetInput")
	}
	if index < 0 || index >= len(c.inputs) {
		return errors.Wrapf(ErrIndexRange, "input %d of %d", index, len(c.inputs))
	}
	c.inputs[index].setValue(value)
	return nil
}

// Propagate evaluates every gate in topological order and returns the
// gates and wires whose value changed since the previous propagation. The
// circuit must be finalized.
func (c *Circuit) Propagate() (ChangeSet, error) {
	if !c.finalized {
		return ChangeSet{}, errors.Wrap(ErrNotFinalized, "Propagate")
	}

	var cs ChangeSet
	var vals []bool
	for _, g := range c.order {
		vals = vals[:0]
		for _, w := range g.inputs {
			vals = append(vals, w.value)
		}

		state, err := Evaluate(g.typ, vals)
		if err != nil {
			return ChangeSet{}, errors.Wrapf(err, "gate %d", g.id)
		}
		old := g.state
		g.state = state
		g.dirty = false

		if g.output != nil {
			g.output.setValue(state)
			if g.output.Changed() {
				cs.Wires = append(cs.Wires, g.output)
			}
		}
		if state != old {
			cs.Gates = append(cs.Gates, g)
		}
	}
	return cs, nil
}

// GetOutput returns the value of the index-th primary output wire.
func (c *Circuit) GetOutput(index int) (bool, error) {
	if !c.finalized {
		return false, errors.Wrap(ErrNotFinalized, "GetOutput")
	}
	if index < 0 || index >= len(c.outputs) {
		return false, errors.Wrapf(ErrIndexRange, "output %d of %d", index, len(c.outputs))
	}
	return c.outputs[index].value, nil
}

// Gates returns all gates in allocation order.
func (c *Circuit) Gates() []*Gate { return c.gates }

// Wires returns all wires in allocation order.
func (c *Circuit) Wires() []*Wire { return c.wires }

// Order returns the topological gate order computed by Finalize.
func (c *Circuit) Order() []*Gate { return c.order }

// InputWires returns the primary input wires in bit-position order.
func (c *Circuit) InputWires() []*Wire { return c.inputs }

// OutputWires returns the primary output wires in bit-position order.
func (c *Circuit) OutputWires() []*Wire { return c.outputs }

// Finalized reports whether Finalize completed successfully.
func (c *Circuit) Finalized() bool { return c.finalized }
