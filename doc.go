/*
Package gateflow models combinational logic circuits as explicit gate and
wire entities owned by a Circuit, and computes their outputs by topological
propagation.

A circuit is built by allocating gates and wires, connecting them, and
marking the primary input and output pins. Finalize validates the wiring and
orders the gates with Kahn's algorithm; Propagate then evaluates every gate
in that order and reports what changed. DecomposeToNAND rewrites the graph
into an equivalent NAND-only form while keeping the primary pins intact.

The timing subpackage replays an already-propagated result depth by depth
for animation, and gatelib provides ready-made adder circuits.
*/
package gateflow
