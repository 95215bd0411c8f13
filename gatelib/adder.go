// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gatelib provides ready-made gateflow circuits.
package gatelib

import (
	"github.com/pkg/errors"

	"github.com/db47h/gateflow"
	"github.com/db47h/gateflow/logger"
)

// builder wraps a circuit under construction and keeps the first
// connection error, so wiring code reads as straight-line calls.
type builder struct {
	c   *gateflow.Circuit
	err error
}

func (b *builder) connect(w *gateflow.Wire, src, dst *gateflow.Gate) {
	if b.err != nil {
		return
	}
	b.err = b.c.Connect(w, src, dst)
}

// halfStage adds a half-adder stage (one XOR, one AND) fed by wa and wb,
// and returns its sum and carry wires.
func (b *builder) halfStage(wa, wb *gateflow.Wire) (sum, carry *gateflow.Wire) {
	xorGate := b.c.AddGate(gateflow.Xor)
	andGate := b.c.AddGate(gateflow.And)
	sum = b.c.AddWire()
	carry = b.c.AddWire()

	b.connect(wa, nil, xorGate)
	b.connect(wb, nil, xorGate)
	b.connect(wa, nil, andGate)
	b.connect(wb, nil, andGate)
	b.connect(sum, xorGate, nil)
	b.connect(carry, andGate, nil)
	return sum, carry
}

// fullStage adds a full-adder stage (two half-adder stages and an OR for
// the carry) fed by wa, wb and cin, and returns its sum and carry-out wires.
func (b *builder) fullStage(wa, wb, cin *gateflow.Wire) (sum, cout *gateflow.Wire) {
	ab, abCarry := b.halfStage(wa, wb)
	sum, sumCarry := b.halfStage(ab, cin)

	orGate := b.c.AddGate(gateflow.Or)
	cout = b.c.AddWire()
	b.connect(abCarry, nil, orGate)
	b.connect(sumCarry, nil, orGate)
	b.connect(cout, orGate, nil)
	return sum, cout
}

// HalfAdder returns a finalized half adder.
//
//	Inputs: A, B
//	Outputs: Sum, Carry
func HalfAdder() (*gateflow.Circuit, error) {
	b := &builder{c: gateflow.New()}

	wa := b.c.AddWire()
	wb := b.c.AddWire()
	b.c.MarkInput(wa)
	b.c.MarkInput(wb)

	sum, carry := b.halfStage(wa, wb)
	b.c.MarkOutput(sum)
	b.c.MarkOutput(carry)

	if b.err != nil {
		return nil, errors.Wrap(b.err, "half adder")
	}
	if err := b.c.Finalize(); err != nil {
		return nil, errors.Wrap(err, "half adder")
	}
	return b.c, nil
}

// FullAdder returns a finalized full adder.
//
//	Inputs: A, B, Cin
//	Outputs: Sum, Cout
func FullAdder() (*gateflow.Circuit, error) {
	b := &builder{c: gateflow.New()}

	wa := b.c.AddWire()
	wb := b.c.AddWire()
	cin := b.c.AddWire()
	b.c.MarkInput(wa)
	b.c.MarkInput(wb)
	b.c.MarkInput(cin)

	sum, cout := b.fullStage(wa, wb, cin)
	b.c.MarkOutput(sum)
	b.c.MarkOutput(cout)

	if b.err != nil {
		return nil, errors.Wrap(b.err, "full adder")
	}
	if err := b.c.Finalize(); err != nil {
		return nil, errors.Wrap(err, "full adder")
	}
	return b.c, nil
}

// RippleCarryAdder returns a finalized bits-wide ripple-carry adder. Bit 0
// is a half-adder stage (there is no carry-in), higher bits are full-adder
// stages chained through their carries.
//
//	Inputs: A[0..bits), B[0..bits)  (LSB first)
//	Outputs: Sum[0..bits), then the final carry-out
func RippleCarryAdder(bits int) (*gateflow.Circuit, error) {
	if bits < 1 {
		return nil, errors.Errorf("ripple-carry adder requires at least 1 bit, got %d", bits)
	}

	b := &builder{c: gateflow.New()}

	aw := make([]*gateflow.Wire, bits)
	bw := make([]*gateflow.Wire, bits)
	for i := range aw {
		aw[i] = b.c.AddWire()
		b.c.MarkInput(aw[i])
	}
	for i := range bw {
		bw[i] = b.c.AddWire()
		b.c.MarkInput(bw[i])
	}

	sums := make([]*gateflow.Wire, bits)
	var carry *gateflow.Wire
	for i := 0; i < bits; i++ {
		if i == 0 {
			sums[i], carry = b.halfStage(aw[i], bw[i])
		} else {
			sums[i], carry = b.fullStage(aw[i], bw[i], carry)
		}
	}

	for _, s := range sums {
		b.c.MarkOutput(s)
	}
	b.c.MarkOutput(carry)

	if b.err != nil {
		return nil, errors.Wrap(b.err, "ripple-carry adder")
	}
	if err := b.c.Finalize(); err != nil {
		return nil, errors.Wrap(err, "ripple-carry adder")
	}

	log := logger.Logger()
	log.Debug().
		Int("bits", bits).
		Int("gates", len(b.c.Gates())).
		Int("wires", len(b.c.Wires())).
		Msg("built ripple-carry adder")

	return b.c, nil
}
