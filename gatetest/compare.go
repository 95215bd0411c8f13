// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gatetest provides utility functions for testing circuits.
package gatetest

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/db47h/gateflow"
)

// exhaustive input sweeps are capped at 2^maxExhaustiveBits combinations;
// wider circuits are sampled randomly instead.
const maxExhaustiveBits = 12

func randBool() bool {
	return rand.Int63()&(1<<62) != 0
}

func inputString(inputs []bool) string {
	var b strings.Builder
	for i, v := range inputs {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString("in[")
		b.WriteString(strconv.Itoa(i))
		b.WriteString("]=")
		b.WriteString(strconv.FormatBool(v))
	}
	return b.String()
}

// CompareCircuits drives both circuits with the same input assignments and
// fails t on the first primary output mismatch. Both circuits must be
// finalized and have the same number of primary inputs and outputs. It
// always tries the all-false and all-true assignments, then sweeps the
// whole input space for small circuits and a random sample for wide ones.
func CompareCircuits(t *testing.T, want, got *gateflow.Circuit) {
	t.Helper()

	nin := len(want.InputWires())
	nout := len(want.OutputWires())
	if n := len(got.InputWires()); n != nin {
		t.Fatalf("input count mismatch: %d != %d", nin, n)
	}
	if n := len(got.OutputWires()); n != nout {
		t.Fatalf("output count mismatch: %d != %d", nout, n)
	}

	inputs := make([]bool, nin)
	check := func() {
		t.Helper()
		for i, v := range inputs {
			if err := want.SetInput(i, v); err != nil {
				t.Fatal(err)
			}
			if err := got.SetInput(i, v); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := want.Propagate(); err != nil {
			t.Fatal(err)
		}
		if _, err := got.Propagate(); err != nil {
			t.Fatal(err)
		}
		for o := 0; o < nout; o++ {
			wv, err := want.GetOutput(o)
			if err != nil {
				t.Fatal(err)
			}
			gv, err := got.GetOutput(o)
			if err != nil {
				t.Fatal(err)
			}
			if wv != gv {
				t.Fatalf("\n%s\nExpected out[%d]=%v\nGot %v", inputString(inputs), o, wv, gv)
			}
		}
	}

	// all false
	check()

	// all true
	for i := range inputs {
		inputs[i] = true
	}
	check()

	if nin <= maxExhaustiveBits {
		for mask := 0; mask < 1<<uint(nin); mask++ {
			for i := range inputs {
				inputs[i] = mask&(1<<uint(i)) != 0
			}
			check()
		}
		return
	}

	for n := 0; n < 1<<maxExhaustiveBits; n++ {
		for i := range inputs {
			inputs[i] = randBool()
		}
		check()
	}
}
