// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"
)

// Mnemonic is an instruction or assembler directive keyword.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	MNEMONIC_NONE = Mnemonic(0)  // -
	OP_ADD        = Mnemonic(1)  // ADD
	OP_AND        = Mnemonic(2)  // AND
	OP_XOR        = Mnemonic(3)  // XOR
	OP_NOT        = Mnemonic(4)  // NOT
	OP_BR         = Mnemonic(5)  // BR
	OP_BRN        = Mnemonic(6)  // BRN
	OP_BRZ        = Mnemonic(7)  // BRZ
	OP_BRP        = Mnemonic(8)  // BRP
	OP_BRNZ       = Mnemonic(9)  // BRNZ
	OP_BRNP       = Mnemonic(10) // BRNP
	OP_BRZP       = Mnemonic(11) // BRZP
	OP_BRNZP      = Mnemonic(12) // BRNZP
	OP_NOP        = Mnemonic(13) // NOP
	OP_JMP        = Mnemonic(14) // JMP
	OP_RET        = Mnemonic(15) // RET
	OP_JSR        = Mnemonic(16) // JSR
	OP_JSRR       = Mnemonic(17) // JSRR
	OP_LDB        = Mnemonic(18) // LDB
	OP_LDW        = Mnemonic(19) // LDW
	OP_STB        = Mnemonic(20) // STB
	OP_STW        = Mnemonic(21) // STW
	OP_LEA        = Mnemonic(22) // LEA
	OP_LSHF       = Mnemonic(23) // LSHF
	OP_RSHFL      = Mnemonic(24) // RSHFL
	OP_RSHFA      = Mnemonic(25) // RSHFA
	OP_TRAP       = Mnemonic(26) // TRAP
	OP_HALT       = Mnemonic(27) // HALT
	OP_RTI        = Mnemonic(28) // RTI
	DIR_ORIG      = Mnemonic(29) // .ORIG
	DIR_FILL      = Mnemonic(30) // .FILL
	DIR_BLKW      = Mnemonic(31) // .BLKW
	DIR_STRINGZ   = Mnemonic(32) // .STRINGZ
	DIR_END       = Mnemonic(33) // .END
)

// mnemonicLimit is one past the last valid Mnemonic.
const mnemonicLimit = int(DIR_END) + 1

// mnemonicMap maps upper case keywords to their mnemonic.
var mnemonicMap = func() map[string]Mnemonic {
	m := make(map[string]Mnemonic, mnemonicLimit)
	for n := 1; n < mnemonicLimit; n++ {
		m[Mnemonic(n).String()] = Mnemonic(n)
	}
	return m
}()

// LookupMnemonic finds the mnemonic for a keyword, ignoring case.
func LookupMnemonic(word string) (op Mnemonic, ok bool) {
	op, ok = mnemonicMap[strings.ToUpper(word)]
	return
}

// Directive returns true for assembler directives, which start with '.'.
func (op Mnemonic) Directive() bool {
	return op >= DIR_ORIG && op <= DIR_END
}

// Valid returns true if the mnemonic is a known instruction or directive.
func (op Mnemonic) Valid() bool {
	return op > MNEMONIC_NONE && int(op) < mnemonicLimit
}
