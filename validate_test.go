package gateflow

import (
	"testing"

	"github.com/pkg/errors"
)

// These tests corrupt the internal back-references directly: the public
// construction API always keeps both sides of a link consistent, so the
// multiset validation in Finalize can only be exercised from inside the
// package.

func Test_validate_missing_destination(t *testing.T) {
	c := New()
	g := c.AddGate(Not)
	w := c.AddWire()
	if err := c.Connect(w, nil, g); err != nil {
		t.Fatal(err)
	}

	// drop the wire-side record of the link
	w.dests = nil

	if err := c.Finalize(); errors.Cause(err) != ErrConnectivity {
		t.Errorf("expected connectivity error, got %v", err)
	}
}

func Test_validate_missing_input(t *testing.T) {
	c := New()
	g := c.AddGate(Not)
	w := c.AddWire()
	if err := c.Connect(w, nil, g); err != nil {
		t.Fatal(err)
	}

	// wire claims a second read that the gate does not have
	w.addDestination(g)

	if err := c.Finalize(); errors.Cause(err) != ErrConnectivity {
		t.Errorf("expected connectivity error, got %v", err)
	}
}

func Test_validate_output_mismatch(t *testing.T) {
	c := New()
	g := c.AddGate(Not)
	w := c.AddWire()

	// gate claims to drive w, but w has no source
	g.output = w

	if err := c.Finalize(); errors.Cause(err) != ErrConnectivity {
		t.Errorf("expected connectivity error, got %v", err)
	}
}

func Test_validate_source_mismatch(t *testing.T) {
	c := New()
	g := c.AddGate(Not)
	w := c.AddWire()

	// wire claims g as source, but g drives nothing
	w.source = g

	if err := c.Finalize(); errors.Cause(err) != ErrConnectivity {
		t.Errorf("expected connectivity error, got %v", err)
	}
}
