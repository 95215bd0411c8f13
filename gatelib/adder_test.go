package gatelib_test

import (
	"testing"

	"github.com/db47h/gateflow"
	"github.com/db47h/gateflow/gatelib"
	"github.com/db47h/gateflow/gatetest"
)

func Test_half_adder(t *testing.T) {
	c, err := gatelib.HalfAdder()
	if err != nil {
		t.Fatal(err)
	}
	if n := len(c.InputWires()); n != 2 {
		t.Fatalf("input count = %d, want 2", n)
	}
	if n := len(c.OutputWires()); n != 2 {
		t.Fatalf("output count = %d, want 2", n)
	}

	td := []struct {
		a, b, sum, carry bool
	}{
		{false, false, false, false},
		{false, true, true, false},
		{true, false, true, false},
		{true, true, false, true},
	}
	for _, d := range td {
		if err := c.SetInput(0, d.a); err != nil {
			t.Fatal(err)
		}
		if err := c.SetInput(1, d.b); err != nil {
			t.Fatal(err)
		}
		if _, err := c.Propagate(); err != nil {
			t.Fatal(err)
		}
		sum, _ := c.GetOutput(0)
		carry, _ := c.GetOutput(1)
		if sum != d.sum || carry != d.carry {
			t.Errorf("A=%v B=%v: sum=%v carry=%v, want sum=%v carry=%v",
				d.a, d.b, sum, carry, d.sum, d.carry)
		}
	}
}

func Test_full_adder(t *testing.T) {
	c, err := gatelib.FullAdder()
	if err != nil {
		t.Fatal(err)
	}

	for mask := 0; mask < 8; mask++ {
		a := mask&1 != 0
		b := mask&2 != 0
		cin := mask&4 != 0
		n := 0
		for _, v := range []bool{a, b, cin} {
			if v {
				n++
			}
		}
		wantSum := n%2 == 1
		wantCout := n >= 2

		for i, v := range []bool{a, b, cin} {
			if err := c.SetInput(i, v); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := c.Propagate(); err != nil {
			t.Fatal(err)
		}
		sum, _ := c.GetOutput(0)
		cout, _ := c.GetOutput(1)
		if sum != wantSum || cout != wantCout {
			t.Errorf("A=%v B=%v Cin=%v: sum=%v cout=%v, want sum=%v cout=%v",
				a, b, cin, sum, cout, wantSum, wantCout)
		}
	}
}

func Test_ripple_carry_adder(t *testing.T) {
	const bits = 7

	c, err := gatelib.RippleCarryAdder(bits)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(c.InputWires()); n != 2*bits {
		t.Fatalf("input count = %d, want %d", n, 2*bits)
	}
	if n := len(c.OutputWires()); n != bits+1 {
		t.Fatalf("output count = %d, want %d", n, bits+1)
	}

	td := []struct {
		a, b, sum uint64
	}{
		{50, 49, 99},
		{99, 99, 198},
		{0, 0, 0},
		{127, 1, 128},
		{127, 127, 254},
	}

	check := func(t *testing.T, c *gateflow.Circuit) {
		t.Helper()
		for _, d := range td {
			if err := gatelib.SetOperands(c, d.a, d.b, bits); err != nil {
				t.Fatal(err)
			}
			if _, err := c.Propagate(); err != nil {
				t.Fatal(err)
			}
			sum, err := gatelib.ReadSum(c)
			if err != nil {
				t.Fatal(err)
			}
			if sum != d.sum {
				t.Errorf("%d + %d = %d, want %d", d.a, d.b, sum, d.sum)
			}
		}
	}

	t.Run("gates", func(t *testing.T) { check(t, c) })

	t.Run("nand", func(t *testing.T) {
		if err := gateflow.DecomposeToNAND(c); err != nil {
			t.Fatal(err)
		}
		for _, g := range c.Gates() {
			if g.Type() != gateflow.Nand {
				t.Fatalf("gate %d is %v after decomposition", g.ID(), g.Type())
			}
		}
		check(t, c)
	})
}

func Test_ripple_carry_adder_errors(t *testing.T) {
	if _, err := gatelib.RippleCarryAdder(0); err == nil {
		t.Error("expected error for 0-bit adder")
	}

	c, err := gatelib.RippleCarryAdder(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := gatelib.SetOperands(c, 1, 1, 3); err == nil {
		t.Error("expected error for mismatched operand width")
	}
}

func Test_adder_nand_equivalence(t *testing.T) {
	const bits = 4

	plain, err := gatelib.RippleCarryAdder(bits)
	if err != nil {
		t.Fatal(err)
	}
	nand, err := gatelib.RippleCarryAdder(bits)
	if err != nil {
		t.Fatal(err)
	}
	if err := gateflow.DecomposeToNAND(nand); err != nil {
		t.Fatal(err)
	}

	gatetest.CompareCircuits(t, plain, nand)
}
