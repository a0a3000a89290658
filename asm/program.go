package asm

import (
	"cmp"
	"iter"
	"slices"
)

// Unit is a single assembled word with its source location.
type Unit struct {
	Addr   uint16 // Byte address of the word.
	Word   uint16 // Encoded word.
	LineNo int    // Source line that produced the word.
	Line   string // Source text that produced the word.
}

// Program is an assembled program image.
type Program struct {
	Origin  uint16       // Address of the first word.
	Units   []Unit       // Words, in ascending address order.
	Symbols *SymbolTable // Final symbol table.
}

// Len returns the number of assembled words.
func (prog *Program) Len() int {
	return len(prog.Units)
}

// Words iterates over the address and value of each word.
func (prog *Program) Words() iter.Seq2[uint16, uint16] {
	return func(yield func(addr uint16, word uint16) bool) {
		for _, unit := range prog.Units {
			if !yield(unit.Addr, unit.Word) {
				return
			}
		}
	}
}

// Binary returns the assembled words.
func (prog *Program) Binary() (words []uint16) {
	words = make([]uint16, 0, len(prog.Units))
	for _, word := range prog.Words() {
		words = append(words, word)
	}

	return
}

// Debug finds the unit at a byte address.
func (prog *Program) Debug(addr uint16) (unit Unit, ok bool) {
	n, ok := slices.BinarySearchFunc(prog.Units, addr, func(u Unit, addr uint16) int {
		return cmp.Compare(u.Addr, addr)
	})
	if ok {
		unit = prog.Units[n]
	}

	return
}
