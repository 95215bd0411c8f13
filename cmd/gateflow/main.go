// Command gateflow builds a ripple-carry adder, propagates a sum through
// it and replays the propagation depth by depth, logging the animation
// progress as a renderer would consume it.
package main

import (
	"flag"

	"github.com/db47h/gateflow"
	"github.com/db47h/gateflow/gatelib"
	"github.com/db47h/gateflow/logger"
	"github.com/db47h/gateflow/timing"
)

func main() {
	bits := flag.Int("bits", 7, "adder width in bits")
	a := flag.Uint64("a", 50, "first operand")
	b := flag.Uint64("b", 49, "second operand")
	nand := flag.Bool("nand", false, "rewrite the circuit to NAND-only form")
	speed := flag.Float64("speed", timing.DefaultSpeed, "playback speed in depth-units per second")
	flag.Parse()

	log := logger.Logger()

	if *speed <= 0 {
		log.Fatal().Float64("speed", *speed).Msg("speed must be greater than 0")
	}

	c, err := gatelib.RippleCarryAdder(*bits)
	if err != nil {
		log.Fatal().Err(err).Msg("building adder")
	}
	if err := gatelib.SetOperands(c, *a, *b, *bits); err != nil {
		log.Fatal().Err(err).Msg("setting operands")
	}
	if _, err := c.Propagate(); err != nil {
		log.Fatal().Err(err).Msg("propagating")
	}
	sum, err := gatelib.ReadSum(c)
	if err != nil {
		log.Fatal().Err(err).Msg("reading sum")
	}
	log.Info().Uint64("a", *a).Uint64("b", *b).Uint64("sum", sum).
		Int("gates", len(c.Gates())).Msg("propagated")

	if *nand {
		if err := gateflow.DecomposeToNAND(c); err != nil {
			log.Fatal().Err(err).Msg("decomposing")
		}
		if _, err := c.Propagate(); err != nil {
			log.Fatal().Err(err).Msg("propagating NAND form")
		}
		nsum, err := gatelib.ReadSum(c)
		if err != nil {
			log.Fatal().Err(err).Msg("reading sum")
		}
		if nsum != sum {
			log.Fatal().Uint64("sum", sum).Uint64("nandSum", nsum).
				Msg("NAND decomposition changed the result")
		}
		log.Info().Int("gates", len(c.Gates())).Msg("rewritten to NAND-only form")
	}

	// replay the propagation at a fixed frame rate
	sched := timing.New(c)
	sched.SetSpeed(*speed)
	const frame = 1.0 / 60

	resolved := 0
	for !sched.Complete() {
		sched.Tick(frame)
		n := 0
		for _, g := range c.Gates() {
			if sched.GateResolved(g) {
				n++
			}
		}
		if n != resolved {
			resolved = n
			log.Info().Float64("depth", sched.CurrentDepth()).
				Int("resolved", n).Int("gates", len(c.Gates())).
				Msg("signal advancing")
		}
	}
	log.Info().Int("maxDepth", sched.MaxDepth()).Msg("animation complete")
}
