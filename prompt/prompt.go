// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package prompt asks questions of a human, one line at a time.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/instrgen/translate"
)

var f = translate.From

var (
	// ErrClosed is returned when the input ends before an answer.
	ErrClosed = errors.New(f("input closed"))
)

// Console prompts on Output and reads answers from Input.
type Console struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
}

// NewConsole creates a console on the given streams.
func NewConsole(input io.Reader, output io.Writer) *Console {
	return &Console{
		Input:  input,
		Output: output,
	}
}

// Printf writes a message to the console output.
func (con *Console) Printf(format string, args ...any) {
	fmt.Fprintf(con.Output, format, args...)
}

// Ask writes the question, then blocks until a line of input arrives.
// The line terminator is removed; the rest of the line is returned verbatim.
func (con *Console) Ask(question string) (answer string, err error) {
	if con.reader == nil {
		con.reader = bufio.NewReader(con.Input)
	}

	_, err = io.WriteString(con.Output, question)
	if err != nil {
		return
	}

	line, err := con.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if len(line) == 0 {
			err = ErrClosed
			return
		}
		// Final line without a terminator.
		err = nil
	}
	if err != nil {
		return
	}

	line = strings.TrimSuffix(line, "\n")
	answer = strings.TrimSuffix(line, "\r")

	return
}
