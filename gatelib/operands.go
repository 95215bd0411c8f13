package gatelib

import (
	"github.com/pkg/errors"

	"github.com/db47h/gateflow"
)

// SetOperands writes the two bits-wide operands of an adder built by
// RippleCarryAdder onto its primary inputs, LSB first: a on inputs
// [0, bits), b on inputs [bits, 2*bits).
func SetOperands(c *gateflow.Circuit, a, b uint64, bits int) error {
	if bits < 1 || 2*bits != len(c.InputWires()) {
		return errors.Errorf("circuit has %d inputs, want %d", len(c.InputWires()), 2*bits)
	}
	for i := 0; i < bits; i++ {
		if err := c.SetInput(i, a&(1<<uint(i)) != 0); err != nil {
			return err
		}
		if err := c.SetInput(bits+i, b&(1<<uint(i)) != 0); err != nil {
			return err
		}
	}
	return nil
}

// ReadSum decodes the primary outputs of an adder as an unsigned integer,
// LSB first. The final carry-out is the most significant bit.
func ReadSum(c *gateflow.Circuit) (uint64, error) {
	var v uint64
	for i := range c.OutputWires() {
		bit, err := c.GetOutput(i)
		if err != nil {
			return 0, err
		}
		if bit {
			v |= 1 << uint(i)
		}
	}
	return v, nil
}
