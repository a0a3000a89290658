package asm

import (
	"errors"
	"strings"

	"github.com/ezrec/lc3b/translate"
)

var f = translate.From

var (
	ErrOperandMissing      = errors.New(f("missing operand"))
	ErrStringMalformed     = errors.New(f(".STRINGZ requires a quoted string"))
	ErrOriginMisaligned    = errors.New(f(".ORIG address must be word aligned"))
	ErrOriginDiscontiguous = errors.New(f(".ORIG may not move the address after code or labels"))
	ErrAddressOverflow     = errors.New(f("program extends past address 0xFFFF"))
)

// ErrAssembly locates an assembly error at its source line.
type ErrAssembly struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrAssembly) Error() string {
	return f("line %d '%v' %v", err.LineNo, strings.TrimSpace(err.Line), err.Err)
}

func (err *ErrAssembly) Unwrap() error {
	return err.Err
}

type ErrInstructionUnknown string

func (err ErrInstructionUnknown) Error() string {
	return f("Unknown instruction '%v'", string(err))
}

func (err ErrInstructionUnknown) Is(target error) (ok bool) {
	_, ok = target.(ErrInstructionUnknown)
	return
}

type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("Duplicate label '%v'", string(err))
}

func (err ErrLabelDuplicate) Is(target error) (ok bool) {
	_, ok = target.(ErrLabelDuplicate)
	return
}

type ErrLabelInvalid string

func (err ErrLabelInvalid) Error() string {
	return f("Invalid label '%v'", string(err))
}

func (err ErrLabelInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrLabelInvalid)
	return
}

type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("Undefined label '%v'", string(err))
}

func (err ErrLabelMissing) Is(target error) (ok bool) {
	_, ok = target.(ErrLabelMissing)
	return
}

type ErrRegisterInvalid string

func (err ErrRegisterInvalid) Error() string {
	return f("Invalid register '%v'", string(err))
}

func (err ErrRegisterInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrRegisterInvalid)
	return
}

type ErrImmediateInvalid string

func (err ErrImmediateInvalid) Error() string {
	return f("Invalid immediate value '%v'", string(err))
}

func (err ErrImmediateInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrImmediateInvalid)
	return
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Is(target error) (ok bool) {
	_, ok = target.(ErrParseExpression)
	return
}

// ErrImmediateRange is an immediate that does not fit its field.
type ErrImmediateRange struct {
	Value    int64
	Min, Max int64
}

func (err *ErrImmediateRange) Error() string {
	return f("Immediate value %v out of range [%v, %v]", err.Value, err.Min, err.Max)
}

func (err *ErrImmediateRange) Is(target error) (ok bool) {
	_, ok = target.(*ErrImmediateRange)
	return
}

// ErrOffsetRange is a label displacement that does not fit its field.
type ErrOffsetRange struct {
	Offset int64
	Bits   int
}

func (err *ErrOffsetRange) Error() string {
	return f("Branch offset %v out of range for PCoffset%v", err.Offset, err.Bits)
}

func (err *ErrOffsetRange) Is(target error) (ok bool) {
	_, ok = target.(*ErrOffsetRange)
	return
}

// ErrOperandCount is an instruction with the wrong number of operands.
// It matches ErrOperandMissing when too few operands were given.
type ErrOperandCount struct {
	Mnemonic Mnemonic
	Want     int
	Have     int
}

func (err *ErrOperandCount) Error() string {
	if err.Want == 1 {
		return f("%v requires 1 operand, found %v", err.Mnemonic, err.Have)
	}
	return f("%v requires %v operands, found %v", err.Mnemonic, err.Want, err.Have)
}

func (err *ErrOperandCount) Is(target error) bool {
	if _, ok := target.(*ErrOperandCount); ok {
		return true
	}
	return target == ErrOperandMissing && err.Have < err.Want
}
