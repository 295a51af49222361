// Package gen generates instruction tables interactively.
//
// A Generator walks the opcodes from a start value through 0xff, asks for a
// handler function name at the start of every group of eight opcodes, and
// appends one table.Record per opcode to its output as soon as it is known.
package gen
