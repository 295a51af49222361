// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gen

import (
	"errors"

	"github.com/ezrec/instrgen/translate"
)

var f = translate.From

var (
	// Start value errors
	ErrNotHex     = errors.New(f("not hexadecimal"))
	ErrNegative   = errors.New(f("negative"))
	ErrExpression = errors.New(f("not an integer expression"))
)

// ErrInput indicates the opcode start value text could not be used.
type ErrInput struct {
	Text string
	Err  error
}

func (err *ErrInput) Error() string {
	return f("opcode start '%v' %v", err.Text, err.Err)
}

func (err *ErrInput) Unwrap() error {
	return err.Err
}

// ErrOpcode indicates the opcode whose record could not be generated.
type ErrOpcode struct {
	Opcode int
	Err    error
}

func (err *ErrOpcode) Error() string {
	return f("opcode %v %v", hexByte(err.Opcode), err.Err)
}

func (err *ErrOpcode) Unwrap() error {
	return err.Err
}
