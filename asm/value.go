// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// field is the bit width and accepted value range of an encoded operand.
type field struct {
	bits     int
	min, max int64
}

func signedField(bits int) field {
	return field{bits: bits, min: -(1 << (bits - 1)), max: (1 << (bits - 1)) - 1}
}

func unsignedField(bits int) field {
	return field{bits: bits, min: 0, max: (1 << bits) - 1}
}

// wordField accepts either a signed or an unsigned 16-bit value.
var wordField = field{bits: 16, min: math.MinInt16, max: math.MaxUint16}

func (fd field) mask() uint16 {
	return uint16((uint32(1) << fd.bits) - 1)
}

// pack range checks a value, and returns it in two's complement form.
func (fd field) pack(value int64) (packed uint16, err error) {
	if value < fd.min || value > fd.max {
		err = &ErrImmediateRange{Value: value, Min: fd.min, Max: fd.max}
		return
	}

	packed = uint16(value) & fd.mask()
	return
}

// scope is the view of the program that operand evaluation can see.
type scope struct {
	symbols *SymbolTable
	pc      int // Address of the statement being evaluated.
	lineno  int
}

// parseRegister parses R0 through R7.
func parseRegister(word string) (reg uint16, err error) {
	if len(word) != 2 || (word[0] != 'R' && word[0] != 'r') || word[1] < '0' || word[1] > '7' {
		err = ErrRegisterInvalid(word)
		return
	}

	reg = uint16(word[1] - '0')
	return
}

// number parses '#decimal', 'x' or '0x' hexadecimal, bare decimal, or a
// '$(...)' expression.
func (sc *scope) number(word string) (value int64, err error) {
	var perr error

	switch {
	case len(word) == 0:
		err = ErrImmediateInvalid(word)
		return
	case strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")"):
		return sc.eval(word[2 : len(word)-1])
	case word[0] == '#':
		value, perr = strconv.ParseInt(word[1:], 10, 64)
	case strings.HasPrefix(word, "0x"), strings.HasPrefix(word, "0X"):
		value, perr = strconv.ParseInt(word[2:], 16, 64)
	case word[0] == 'x', word[0] == 'X':
		value, perr = strconv.ParseInt(word[1:], 16, 64)
	default:
		value, perr = strconv.ParseInt(word, 10, 64)
	}

	if perr != nil {
		err = ErrImmediateInvalid(word)
	}

	return
}

// immediate parses a number and packs it into a field.
func (sc *scope) immediate(word string, fd field) (packed uint16, err error) {
	value, err := sc.number(word)
	if err != nil {
		return
	}

	return fd.pack(value)
}

// offset resolves a PC relative operand. Symbols are converted to a word
// displacement from the following instruction; anything else is a raw
// immediate.
func (sc *scope) offset(word string, bits int) (packed uint16, err error) {
	fd := signedField(bits)

	target, ok := sc.symbols.Lookup(word)
	if ok {
		offset := (int64(target) - int64(sc.pc+2)) >> 1
		if offset < fd.min || offset > fd.max {
			err = &ErrOffsetRange{Offset: offset, Bits: bits}
			return
		}
		packed = uint16(offset) & fd.mask()
		return
	}

	packed, err = sc.immediate(word, fd)
	return sc.undefined(word, packed, err)
}

// address resolves a symbol to its address, or parses a 16-bit word.
func (sc *scope) address(word string) (value uint16, err error) {
	value, ok := sc.symbols.Lookup(word)
	if ok {
		return
	}

	value, err = sc.immediate(word, wordField)
	return sc.undefined(word, value, err)
}

// undefined reports an unparsable identifier as a missing label.
func (sc *scope) undefined(word string, value uint16, err error) (uint16, error) {
	if errors.Is(err, ErrImmediateInvalid("")) && labelRegexp.MatchString(word) {
		err = ErrLabelMissing(strings.ToUpper(word))
	}
	return value, err
}

// eval does compile-time $(...) evaluations, with the symbols, PC and
// LINENO predeclared.
func (sc *scope) eval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"PC":     starlark.MakeInt(sc.pc),
		"LINENO": starlark.MakeInt(sc.lineno),
	}
	for name, address := range sc.symbols.All() {
		pred[name] = starlark.MakeInt(int(address))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}

	switch rc := dict["rc"].(type) {
	case starlark.Int:
		var ok bool
		value, ok = rc.Int64()
		if !ok {
			err = ErrParseExpression(expr)
		}
	case starlark.Float:
		if float64(rc) != math.Trunc(float64(rc)) || math.Abs(float64(rc)) > math.MaxInt32 {
			err = ErrParseExpression(expr)
			return
		}
		value = int64(rc)
	default:
		err = ErrParseExpression(expr)
	}

	return
}

// parseString decodes a double quoted .STRINGZ operand into words.
func parseString(word string) (words []uint16, err error) {
	if len(word) < 2 || word[0] != '"' || word[len(word)-1] != '"' {
		err = ErrStringMalformed
		return
	}

	escaped := false
	body := word[1 : len(word)-1]
	for _, c := range body {
		if escaped {
			escaped = false
			switch c {
			case 'n':
				c = '\n'
			case 'r':
				c = '\r'
			case 't':
				c = '\t'
			case 'e':
				c = '\033'
			case '0':
				c = 0
			case '\\', '"':
			default:
				err = ErrStringMalformed
				return
			}
		} else if c == '\\' {
			escaped = true
			continue
		} else if c == '"' {
			err = ErrStringMalformed
			return
		}
		words = append(words, uint16(c))
	}

	if escaped {
		err = ErrStringMalformed
		return
	}

	return
}
