// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"log"
)

// BuildSymbols is the first pass. It walks the statements once, giving
// each label the address of the statement it is attached to.
func (asm *Assembler) BuildSymbols(stmts []Statement) (symbols *SymbolTable, err error) {
	symbols = NewSymbolTable()
	for name, address := range asm.predefine {
		err = symbols.Define(name, address)
		if err != nil {
			return
		}
	}

	loc := newLocator()

	for n := range stmts {
		stmt := &stmts[n]

		if asm.Verbose {
			log.Printf("pass1 %04X %v: %v\n", loc.addr, stmt.LineNo, stmt.Text)
		}

		err = asm.layoutStatement(&loc, stmt, symbols)
		if err != nil {
			err = &ErrAssembly{LineNo: stmt.LineNo, Line: stmt.Text, Err: err}
			return
		}

		if stmt.Mnemonic == DIR_END {
			break
		}
	}

	return
}

// layoutStatement defines the statement's label and moves past it.
func (asm *Assembler) layoutStatement(loc *locator, stmt *Statement, symbols *SymbolTable) (err error) {
	sc := &scope{symbols: symbols, pc: loc.addr, lineno: stmt.LineNo}

	if stmt.Mnemonic == DIR_ORIG {
		var origin uint16
		origin, err = sc.origin(stmt)
		if err != nil {
			return
		}
		err = loc.setOrigin(origin)
		if err != nil {
			return
		}
	}

	if len(stmt.Label) != 0 {
		var address uint16
		address, err = loc.here()
		if err != nil {
			return
		}
		err = symbols.Define(stmt.Label, address)
		if err != nil {
			return
		}
	}

	size, err := sc.size(stmt)
	if err != nil {
		return
	}

	return loc.advance(size)
}
