// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package table

import (
	"fmt"
	"io"
)

const (
	OPCODE_MAX   = 0xff // Last opcode in a table.
	GROUP_SIZE   = 8    // Opcodes sharing one handler name.
	GROUP_MASK   = GROUP_SIZE - 1
	SLOW_OFFSET  = 6  // Offset within a group of the slow opcode.
	CYCLES_SLOW  = 16 // Cycles of the slow opcode in a group.
	CYCLES_QUICK = 8  // Cycles of every other opcode.
)

// Record is a single instruction table entry.
type Record struct {
	Opcode int    // Opcode, 0x00 to 0xff.
	Func   string // Handler function name.
	Cycles int    // Cycle count.
}

// CyclesFor returns the cycle count of an opcode.
func CyclesFor(opcode int) int {
	if opcode&GROUP_MASK == SLOW_OFFSET {
		return CYCLES_SLOW
	}

	return CYCLES_QUICK
}

// GroupStart returns true if the opcode begins a new handler group.
func GroupStart(opcode int) bool {
	return opcode&GROUP_MASK == 0
}

// NewRecord returns the record for an opcode in the named group.
func NewRecord(opcode int, name string) Record {
	return Record{
		Opcode: opcode,
		Func:   name,
		Cycles: CyclesFor(opcode),
	}
}

// String returns the struct literal text of the record.
func (rec Record) String() string {
	return fmt.Sprintf("Instruction {\n"+
		"    opcode: 0x%02x,\n"+
		"    func: %s,\n"+
		"    cycles: %d,\n"+
		"},\n", rec.Opcode, rec.Func, rec.Cycles)
}

// Writer appends records to an output stream.
type Writer struct {
	Output io.Writer

	count int
}

// Write appends a single record.
func (tw *Writer) Write(rec Record) (err error) {
	_, err = io.WriteString(tw.Output, rec.String())
	if err != nil {
		return
	}

	tw.count++

	return
}

// Count returns the number of records written.
func (tw *Writer) Count() int {
	return tw.count
}
