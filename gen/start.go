// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gen

import (
	"fmt"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/instrgen/table"
)

// Names visible to $(...) start expressions.
var startPredefine = starlark.StringDict{
	"OPCODE_MAX": starlark.MakeInt(table.OPCODE_MAX),
	"GROUP_SIZE": starlark.MakeInt(table.GROUP_SIZE),
}

// hexByte formats an opcode the way the table does.
func hexByte(value int) string {
	return fmt.Sprintf("0x%02x", value)
}

// ParseStart parses the opcode start value.
//
// The text is a base 16 integer, optionally prefixed by 0x and optionally
// using _ digit separators, or a $(...) integer expression. Values past
// OPCODE_MAX are valid and result in an empty table.
func ParseStart(text string) (start int, err error) {
	word := strings.TrimSpace(text)

	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		start, err = evalStart(word[2 : len(word)-1])
	} else {
		start, err = hexStart(word)
	}
	if err != nil {
		err = &ErrInput{Text: text, Err: err}
		return
	}

	if start < 0 {
		err = &ErrInput{Text: text, Err: ErrNegative}
		start = 0
	}

	return
}

// hexStart parses a signed base 16 word.
func hexStart(word string) (start int, err error) {
	negative := false
	switch {
	case strings.HasPrefix(word, "-"):
		negative = true
		word = word[1:]
	case strings.HasPrefix(word, "+"):
		word = word[1:]
	}

	digits, ok := strings.CutPrefix(word, "0x")
	if !ok {
		digits, _ = strings.CutPrefix(word, "0X")
	}

	// Base 0 with an explicit prefix validates _ separators.
	v64, perr := strconv.ParseInt("0x"+digits, 0, 64)
	if perr != nil {
		err = ErrNotHex
		return
	}

	start = int(v64)
	if negative {
		start = -start
	}

	return
}

// evalStart evaluates a $(...) expression.
func evalStart(expr string) (start int, err error) {
	thread := starlark.Thread{Name: "start"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, serr := starlark.ExecFileOptions(&opts, &thread, "start", prog, startPredefine)
	if serr != nil {
		err = fmt.Errorf("%w: %v", ErrExpression, serr)
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpression
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrExpression
		return
	}

	start = int(st_int64)
	return
}
