// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gen

import (
	"io"
	"iter"
	"log"

	"github.com/ezrec/instrgen/table"
)

const (
	PROMPT_START    = "Opcode start val: "
	PROMPT_FUNCTION = "Function: "
	ECHO_NEXT       = "Next opcode: %v\n"
)

// Prompter asks questions of the user.
type Prompter interface {
	// Ask blocks until the user answers the question.
	Ask(question string) (answer string, err error)
	// Printf writes a message to the user.
	Printf(format string, args ...any)
}

// Opcodes returns an iterator over the opcodes from start through OPCODE_MAX.
func Opcodes(start int) iter.Seq[int] {
	return func(yield func(opcode int) bool) {
		for opcode := start; opcode <= table.OPCODE_MAX; opcode++ {
			if !yield(opcode) {
				return
			}
		}
	}
}

// Generator writes an instruction table, asking the user for handler names.
type Generator struct {
	Verbose  bool      // If set, logs every record.
	Seed     string    // Handler name for a partial first group.
	Prompter Prompter  // Source of handler names.
	Output   io.Writer // Destination of the table text.
}

// Run writes records for every opcode from start through OPCODE_MAX.
//
// A handler name is requested at each multiple of GROUP_SIZE. When start is
// not aligned the first, partial, group uses Seed, or asks for a name if
// Seed is empty.
func (gr *Generator) Run(start int) (count int, err error) {
	tw := &table.Writer{Output: gr.Output}
	defer func() {
		count = tw.Count()
	}()

	name := gr.Seed
	named := len(name) != 0

	for opcode := range Opcodes(start) {
		gr.Prompter.Printf(ECHO_NEXT, hexByte(opcode))

		if table.GroupStart(opcode) || !named {
			name, err = gr.Prompter.Ask(PROMPT_FUNCTION)
			if err != nil {
				err = &ErrOpcode{Opcode: opcode, Err: err}
				return
			}
			named = true
		}

		rec := table.NewRecord(opcode, name)
		if gr.Verbose {
			log.Printf("%v: %v, %v cycles", hexByte(rec.Opcode), rec.Func, rec.Cycles)
		}

		err = tw.Write(rec)
		if err != nil {
			err = &ErrOpcode{Opcode: opcode, Err: err}
			return
		}
	}

	return
}
