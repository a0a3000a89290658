// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"strings"
)

// Assembler is a two pass assembler for the LC-3b.
type Assembler struct {
	Verbose  bool // If set, verbosely logs the assembler actions.
	Implicit bool // If set, labels may be given without a trailing ':'.

	predefine map[string]uint16 // Predefined symbols.
}

// Predefine defines a symbol before assembly starts, or redefines an
// existing predefined symbol.
func (asm *Assembler) Predefine(name string, address uint16) {
	if asm.predefine == nil {
		asm.predefine = make(map[string]uint16)
	}
	asm.predefine[strings.ToUpper(name)] = address
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	lines, err := ReadLines(input)
	if err != nil {
		return
	}

	stmts, err := Normalize(lines, asm.Implicit)
	if err != nil {
		return
	}

	symbols, err := asm.BuildSymbols(stmts)
	if err != nil {
		return
	}

	return asm.Encode(stmts, symbols)
}

// Assemble assembles source text with the default assembler settings.
func Assemble(source string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(source))
}
