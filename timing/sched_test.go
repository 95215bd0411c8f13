package timing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/gateflow"
	"github.com/db47h/gateflow/timing"
)

// notChain builds a finalized chain of n NOT gates fed by one primary
// input.
func notChain(t *testing.T, n int) *gateflow.Circuit {
	t.Helper()
	c := gateflow.New()
	w := c.AddWire()
	c.MarkInput(w)
	for i := 0; i < n; i++ {
		g := c.AddGate(gateflow.Not)
		require.NoError(t, c.Connect(w, nil, g))
		w = c.AddWire()
		require.NoError(t, c.Connect(w, g, nil))
	}
	c.MarkOutput(w)
	require.NoError(t, c.Finalize())
	require.NoError(t, c.SetInput(0, true))
	_, err := c.Propagate()
	require.NoError(t, err)
	return c
}

func Test_depths(t *testing.T) {
	c := notChain(t, 3)
	s := timing.New(c)

	order := c.Order()
	require.Len(t, order, 3)
	require.Equal(t, 0, s.GateDepth(order[0]))
	require.Equal(t, 1, s.GateDepth(order[1]))
	require.Equal(t, 2, s.GateDepth(order[2]))
	require.Equal(t, 2, s.MaxDepth())

	// a gate from another circuit is unknown
	other := notChain(t, 1)
	require.Equal(t, -1, s.GateDepth(other.Gates()[0]))
	require.False(t, s.GateResolved(other.Gates()[0]))
}

func Test_depths_diamond(t *testing.T) {
	// in -> NOT1, NOT2; both feed AND: AND sits at depth 1
	c := gateflow.New()
	in := c.AddWire()
	c.MarkInput(in)
	not1 := c.AddGate(gateflow.Not)
	not2 := c.AddGate(gateflow.Not)
	and := c.AddGate(gateflow.And)
	w1 := c.AddWire()
	w2 := c.AddWire()
	out := c.AddWire()
	c.MarkOutput(out)

	require.NoError(t, c.Connect(in, nil, not1))
	require.NoError(t, c.Connect(in, nil, not2))
	require.NoError(t, c.Connect(w1, not1, and))
	require.NoError(t, c.Connect(w2, not2, and))
	require.NoError(t, c.Connect(out, and, nil))
	require.NoError(t, c.Finalize())

	s := timing.New(c)
	require.Equal(t, 0, s.GateDepth(not1))
	require.Equal(t, 0, s.GateDepth(not2))
	require.Equal(t, 1, s.GateDepth(and))
	require.Equal(t, 1, s.MaxDepth())
}

func Test_step(t *testing.T) {
	c := notChain(t, 3)
	s := timing.New(c)

	require.Equal(t, -1.0, s.CurrentDepth())
	for _, g := range c.Gates() {
		require.False(t, s.GateResolved(g))
	}

	// a step from before the start lands on depth 0
	s.Step()
	require.Equal(t, timing.Paused, s.Mode())
	s.Tick(0)
	require.Equal(t, 0.0, s.CurrentDepth())

	// paused with no pending step: tick is a no-op
	s.Tick(1)
	require.Equal(t, 0.0, s.CurrentDepth())

	// each step advances exactly one integer unit
	s.Step()
	s.Tick(0)
	require.Equal(t, 1.0, s.CurrentDepth())
	s.Step()
	s.Tick(0)
	require.Equal(t, 2.0, s.CurrentDepth())
	s.Step()
	s.Tick(0)
	require.Equal(t, 3.0, s.CurrentDepth())
	require.True(t, s.Complete())

	// clamped at max depth + 1
	s.Step()
	s.Tick(0)
	require.Equal(t, 3.0, s.CurrentDepth())
}

func Test_realtime(t *testing.T) {
	c := notChain(t, 3)
	s := timing.New(c)
	s.SetSpeed(1)
	require.Equal(t, timing.Realtime, s.Mode())

	s.Tick(1) // -1 -> 0
	require.Equal(t, 0.0, s.CurrentDepth())
	s.Tick(0.5)
	require.InDelta(t, 0.5, s.CurrentDepth(), 1e-9)

	// clamp to max depth + 1
	s.Tick(100)
	require.Equal(t, 3.0, s.CurrentDepth())
	require.True(t, s.Complete())
	for _, g := range c.Gates() {
		require.True(t, s.GateResolved(g))
		require.Equal(t, 1.0, s.GateResolveFraction(g))
	}
	for _, w := range c.Wires() {
		require.True(t, s.WireResolved(w))
		require.Equal(t, 1.0, s.WireSignalProgress(w))
	}
}

func Test_nonpositive_speed(t *testing.T) {
	// a non-positive speed makes no progress, so playback loops driven by
	// Complete would spin forever; callers must reject such speeds up front.
	c := notChain(t, 2)
	s := timing.New(c)

	for _, speed := range []float64{0, -1} {
		s.Reset()
		s.SetMode(timing.Realtime)
		s.SetSpeed(speed)
		for i := 0; i < 1000; i++ {
			s.Tick(1)
		}
		require.LessOrEqual(t, s.CurrentDepth(), -1.0)
		require.False(t, s.Complete())
	}
}

func Test_resolution_boundaries(t *testing.T) {
	c := notChain(t, 1)
	in := c.InputWires()[0]
	out := c.OutputWires()[0]
	g := c.Order()[0]

	s := timing.New(c)
	s.SetSpeed(1)

	require.False(t, s.GateResolved(g))
	require.False(t, s.WireResolved(out))
	require.False(t, s.WireResolved(in))
	require.Equal(t, 0.0, s.WireSignalProgress(in))
	require.Equal(t, 0.0, s.WireSignalProgress(out))

	s.Tick(1) // -1 -> 0

	require.True(t, s.GateResolved(g))
	require.True(t, s.WireResolved(in))
	require.True(t, s.WireResolved(out))
	require.Equal(t, 0.0, s.GateResolveFraction(g))
	require.Equal(t, 1.0, s.WireSignalProgress(in))
	require.Equal(t, 0.0, s.WireSignalProgress(out))

	s.Tick(0.5)
	require.InDelta(t, 0.5, s.GateResolveFraction(g), 1e-9)
	require.InDelta(t, 0.5, s.WireSignalProgress(out), 1e-9)

	s.Tick(0.5)
	require.Equal(t, 1.0, s.GateResolveFraction(g))
	require.Equal(t, 1.0, s.WireSignalProgress(out))
	require.True(t, s.Complete())
}

func Test_reset_and_toggle(t *testing.T) {
	c := notChain(t, 2)
	s := timing.New(c)

	s.Step() // pauses playback and leaves a step pending
	s.Reset()
	require.Equal(t, -1.0, s.CurrentDepth())
	require.Equal(t, timing.Paused, s.Mode())

	// the pending step was discarded by Reset
	s.Tick(1)
	require.Equal(t, -1.0, s.CurrentDepth())

	s.TogglePause()
	require.Equal(t, timing.Realtime, s.Mode())
	s.TogglePause()
	require.Equal(t, timing.Paused, s.Mode())

	s.SetMode(timing.Realtime)
	s.SetSpeed(2)
	s.Tick(0.5) // -1 -> 0
	require.Equal(t, 0.0, s.CurrentDepth())
}
