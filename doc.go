// Copyright (c) 2024 The robdd Authors
//
// MIT License

/*
Package robdd implements a Reduced Ordered Binary Decision Diagram (ROBDD)
engine with complement edges.

Boolean functions are represented as canonical, maximally-shared directed
acyclic graphs. Each edge in the graph carries one extra bit, the complement
flag, so that a function and its negation share the same underlying node;
this halves the number of distinct nodes a naive (uncomplemented) ROBDD
would otherwise need.

Basics

A Manager owns the unique table (the content-addressed store of internal
nodes) and the computed cache (the memo table for the ITE rewriter). All
operations over the diagram go through a Manager. A NodeRef is a 32-bit
value: the high bit is the complement flag and the low 31 bits index into
the Manager's unique table. Two reserved references, True and False, denote
the constant functions.

Every binary connective is derived from a single recursive primitive, Ite
(if-then-else), by Shannon expansion on the topmost variable of its three
operands, rather than from a separate truth-table dispatch.

Concurrency

Both the unique table and the computed cache are lock-striped: each slot
carries its own spinlock, so independent insertions never contend with each
other. Ite opportunistically spawns its two Shannon-expansion branches on
separate goroutines when both operands are large enough to amortize the
cost of doing so (see WithGranularity). There is no global lock anywhere in
the engine.

Use of a Manager

A Manager is sized once, at construction, from a memory budget: the
computed cache gets a fixed share (see WithCacheBytes) and the remainder of
the budget, after subtracting a headroom constant, is handed to the unique
table. The tables never resize or garbage collect: once sized,
lookupOrCreate either finds a slot or fails with ErrTableFull. There is no
dynamic variable reordering, no persistence, and no support for
quantification or substitution. Dead nodes are never collected or
reference-counted; the unique table and computed cache live for the
lifetime of the Manager that owns them.
*/
package robdd
