package asm

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// SymbolTable maps case insensitive label names to byte addresses.
type SymbolTable struct {
	address map[string]uint16
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{address: make(map[string]uint16, 16)}
}

// Define adds a symbol, failing if the name is already present.
func (st *SymbolTable) Define(name string, address uint16) (err error) {
	name = strings.ToUpper(name)
	if _, ok := st.address[name]; ok {
		err = ErrLabelDuplicate(name)
		return
	}

	if st.address == nil {
		st.address = make(map[string]uint16, 16)
	}
	st.address[name] = address

	return
}

// Lookup returns the address of a symbol.
func (st *SymbolTable) Lookup(name string) (address uint16, ok bool) {
	if st == nil {
		return
	}
	address, ok = st.address[strings.ToUpper(name)]
	return
}

// Len returns the number of symbols.
func (st *SymbolTable) Len() int {
	if st == nil {
		return 0
	}
	return len(st.address)
}

// All iterates over the symbols, sorted by name.
func (st *SymbolTable) All() iter.Seq2[string, uint16] {
	return func(yield func(name string, address uint16) bool) {
		if st == nil {
			return
		}
		for _, name := range slices.Sorted(maps.Keys(st.address)) {
			if !yield(name, st.address[name]) {
				return
			}
		}
	}
}

// Clone returns a copy of the symbol table.
func (st *SymbolTable) Clone() *SymbolTable {
	clone := NewSymbolTable()
	if st != nil {
		maps.Copy(clone.address, st.address)
	}
	return clone
}
