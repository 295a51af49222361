// Package table describes the instruction table emitted by instrgen.
//
// Each Record holds an opcode, the name of the handler function for its
// group of eight opcodes, and a cycle count. Records are rendered as Rust
// style struct literals, one four field block per opcode, so that the
// output can be pasted into an instruction array.
package table
