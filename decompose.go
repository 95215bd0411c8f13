// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gateflow

import (
	"github.com/pkg/errors"

	"github.com/db47h/gateflow/logger"
)

// DecomposeToNAND rewrites every non-NAND gate of c into an equivalent
// two-input-NAND-only subnetwork, then re-finalizes the circuit:
//
//	NOT(A)    = NAND(A,A)
//	BUFFER(A) = NAND(NAND(A,A), NAND(A,A))
//	AND(A,B)  = NAND(NAND(A,B), NAND(A,B))
//	OR(A,B)   = NAND(NAND(A,A), NAND(B,B))
//	XOR(A,B)  = NAND(NAND(A, NAND(A,B)), NAND(B, NAND(A,B)))
//
// Each rewritten gate keeps its identity and keeps driving its original
// output wire's consumers: the gate is retyped to NAND in place, extra
// gates and wires are allocated for the rest of the identity, and the
// original output wire is reattached to the last gate of the expansion.
// Primary input and output pins are untouched, so the circuit computes the
// same truth table as before.
//
// Only the 1- and 2-input gates produced by the construction API and
// gatelib are supported; a wider gate fails with an *ArityError before any
// rewriting of that gate takes place. NAND gates are left as they are, so
// decomposing an all-NAND circuit is a no-op.
func DecomposeToNAND(c *Circuit) error {
	// Snapshot the gates to rewrite: the expansion allocates new NAND
	// gates that must not be revisited.
	snapshot := make([]*Gate, 0, len(c.gates))
	for _, g := range c.gates {
		if g.typ != Nand {
			snapshot = append(snapshot, g)
		}
	}
	before := len(c.gates)

	for _, g := range snapshot {
		if err := c.rewriteGate(g); err != nil {
			return errors.Wrapf(err, "decompose gate %d", g.id)
		}
	}

	log := logger.Logger()
	log.Debug().
		Int("gates", before).
		Int("nandGates", len(c.gates)).
		Int("rewritten", len(snapshot)).
		Msg("decomposed circuit to NAND-only form")

	return c.Finalize()
}

// linkInput connects w as the next input of g, updating both sides.
func linkInput(w *Wire, g *Gate) {
	g.addInput(w)
	w.addDestination(g)
}

// linkOutput makes g drive w, updating both sides. A nil wire detaches the
// gate's output (the rewritten gate drove nothing to begin with).
func linkOutput(w *Wire, g *Gate) {
	g.output = w
	if w != nil {
		w.source = g
	}
}

// disconnectInputs removes g from the destination lists of all its input
// wires, one occurrence per input pin, then clears g's input list.
func disconnectInputs(g *Gate) {
	for _, w := range g.inputs {
		w.removeDestination(g)
	}
	g.clearInputs()
}

func (c *Circuit) rewriteGate(g *Gate) error {
	out := g.output

	switch g.typ {
	case Not:
		if len(g.inputs) != 1 {
			return &ArityError{Type: g.typ, Want: 1, Exact: true, Got: len(g.inputs)}
		}
		a := g.inputs[0]

		disconnectInputs(g)
		g.typ = Nand
		linkInput(a, g)
		linkInput(a, g)

	case Buffer:
		if len(g.inputs) != 1 {
			return &ArityError{Type: g.typ, Want: 1, Exact: true, Got: len(g.inputs)}
		}
		a := g.inputs[0]

		disconnectInputs(g)
		g.typ = Nand
		linkInput(a, g)
		linkInput(a, g)

		notOut := c.AddWire()
		linkOutput(notOut, g)

		nand2 := c.AddGate(Nand)
		linkInput(notOut, nand2)
		linkInput(notOut, nand2)
		linkOutput(out, nand2)

	case And:
		if len(g.inputs) != 2 {
			return &ArityError{Type: g.typ, Want: 2, Exact: true, Got: len(g.inputs)}
		}
		a, b := g.inputs[0], g.inputs[1]

		disconnectInputs(g)
		g.typ = Nand
		linkInput(a, g)
		linkInput(b, g)

		nandOut := c.AddWire()
		linkOutput(nandOut, g)

		nand2 := c.AddGate(Nand)
		linkInput(nandOut, nand2)
		linkInput(nandOut, nand2)
		linkOutput(out, nand2)

	case Or:
		if len(g.inputs) != 2 {
			return &ArityError{Type: g.typ, Want: 2, Exact: true, Got: len(g.inputs)}
		}
		a, b := g.inputs[0], g.inputs[1]

		// g becomes NAND(A,A), i.e. NOT A.
		disconnectInputs(g)
		g.typ = Nand
		linkInput(a, g)
		linkInput(a, g)

		notAOut := c.AddWire()
		linkOutput(notAOut, g)

		notB := c.AddGate(Nand)
		linkInput(b, notB)
		linkInput(b, notB)
		notBOut := c.AddWire()
		linkOutput(notBOut, notB)

		final := c.AddGate(Nand)
		linkInput(notAOut, final)
		linkInput(notBOut, final)
		linkOutput(out, final)

	case Xor:
		if len(g.inputs) != 2 {
			return &ArityError{Type: g.typ, Want: 2, Exact: true, Got: len(g.inputs)}
		}
		a, b := g.inputs[0], g.inputs[1]

		// g becomes the shared NAND(A,B).
		disconnectInputs(g)
		g.typ = Nand
		linkInput(a, g)
		linkInput(b, g)

		nandABOut := c.AddWire()
		linkOutput(nandABOut, g)

		nandA := c.AddGate(Nand)
		linkInput(a, nandA)
		linkInput(nandABOut, nandA)
		nandAOut := c.AddWire()
		linkOutput(nandAOut, nandA)

		nandB := c.AddGate(Nand)
		linkInput(b, nandB)
		linkInput(nandABOut, nandB)
		nandBOut := c.AddWire()
		linkOutput(nandBOut, nandB)

		final := c.AddGate(Nand)
		linkInput(nandAOut, final)
		linkInput(nandBOut, final)
		linkOutput(out, final)

	case Nand:
		// already NAND, nothing to do
	}
	return nil
}
