// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gateflow

// A Type identifies the boolean function computed by a gate.
type Type uint8

// Supported gate types.
const (
	Nand Type = iota
	And
	Or
	Xor
	Not
	Buffer
)

var typeNames = [...]string{
	Nand:   "NAND",
	And:    "AND",
	Or:     "OR",
	Xor:    "XOR",
	Not:    "NOT",
	Buffer: "BUFFER",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "UNKNOWN"
}

// Evaluate computes the output of a gate of type t for the given ordered
// input values. It is a pure function with no side effects. NOT and BUFFER
// take exactly one input, all other types take two or more; a wrong input
// count returns an *ArityError.
func Evaluate(t Type, inputs []bool) (bool, error) {
	switch t {
	case Not:
		if len(inputs) != 1 {
			return false, &ArityError{Type: t, Want: 1, Exact: true, Got: len(inputs)}
		}
		return !inputs[0], nil

	case Buffer:
		if len(inputs) != 1 {
			return false, &ArityError{Type: t, Want: 1, Exact: true, Got: len(inputs)}
		}
		return inputs[0], nil

	case And:
		if len(inputs) < 2 {
			return false, &ArityError{Type: t, Want: 2, Got: len(inputs)}
		}
		for _, v := range inputs {
			if !v {
				return false, nil
			}
		}
		return true, nil

	case Nand:
		if len(inputs) < 2 {
			return false, &ArityError{Type: t, Want: 2, Got: len(inputs)}
		}
		for _, v := range inputs {
			if !v {
				return true, nil
			}
		}
		return false, nil

	case Or:
		if len(inputs) < 2 {
			return false, &ArityError{Type: t, Want: 2, Got: len(inputs)}
		}
		for _, v := range inputs {
			if v {
				return true, nil
			}
		}
		return false, nil

	case Xor:
		// n-ary XOR is the parity of the inputs.
		if len(inputs) < 2 {
			return false, &ArityError{Type: t, Want: 2, Got: len(inputs)}
		}
		r := false
		for _, v := range inputs {
			r = r != v
		}
		return r, nil
	}
	return false, &ArityError{Type: t, Want: 1, Got: len(inputs)}
}

// A Gate is a single logic gate in a circuit. Gates are created by
// Circuit.AddGate and wired up with Circuit.Connect; their topology is
// mutated only by the owning Circuit.
type Gate struct {
	id     uint32
	typ    Type
	inputs []*Wire
	output *Wire
	state  bool
	dirty  bool
}

// ID returns the gate's stable identifier within its circuit.
func (g *Gate) ID() uint32 { return g.id }

// Type returns the gate's boolean function.
func (g *Gate) Type() Type { return g.typ }

// State returns the gate's cached output state from the last propagation.
func (g *Gate) State() bool { return g.state }

// Dirty reports whether the gate has not been evaluated since it was
// created or rewired.
func (g *Gate) Dirty() bool { return g.dirty }

// Output returns the wire driven by this gate, or nil.
func (g *Gate) Output() *Wire { return g.output }

// Inputs returns the gate's input wires in operand order. The same wire may
// appear more than once. The returned slice must not be modified.
func (g *Gate) Inputs() []*Wire { return g.inputs }

func (g *Gate) addInput(w *Wire) {
	g.inputs = append(g.inputs, w)
	g.dirty = true
}

func (g *Gate) clearInputs() {
	g.inputs = nil
	g.dirty = true
}
