// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"log"
)

// Opcodes, bits 15..12 of an instruction word.
const (
	OPCODE_BR   = uint16(0x0)
	OPCODE_ADD  = uint16(0x1)
	OPCODE_LDB  = uint16(0x2)
	OPCODE_STB  = uint16(0x3)
	OPCODE_JSR  = uint16(0x4)
	OPCODE_AND  = uint16(0x5)
	OPCODE_LDW  = uint16(0x6)
	OPCODE_STW  = uint16(0x7)
	OPCODE_RTI  = uint16(0x8)
	OPCODE_XOR  = uint16(0x9)
	OPCODE_JMP  = uint16(0xC)
	OPCODE_SHF  = uint16(0xD)
	OPCODE_LEA  = uint16(0xE)
	OPCODE_TRAP = uint16(0xF)
)

// Fixed encodings of the operand-less aliases.
const (
	WORD_NOP  = uint16(0x0000) // BR with no condition codes
	WORD_RET  = uint16(0xC1C0) // JMP R7
	WORD_HALT = uint16(0xF025) // TRAP x25
	WORD_RTI  = uint16(0x8000)
)

// encoder encodes one statement into its words.
type encoder func(sc *scope, stmt *Statement) (words []uint16, err error)

// encoders has an entry for every Mnemonic.
var encoders = [mnemonicLimit]encoder{
	MNEMONIC_NONE: encodeNothing,
	OP_ADD:        encodeOperate(OPCODE_ADD),
	OP_AND:        encodeOperate(OPCODE_AND),
	OP_XOR:        encodeOperate(OPCODE_XOR),
	OP_NOT:        encodeNot,
	OP_BR:         encodeBranch(0b111),
	OP_BRN:        encodeBranch(0b100),
	OP_BRZ:        encodeBranch(0b010),
	OP_BRP:        encodeBranch(0b001),
	OP_BRNZ:       encodeBranch(0b110),
	OP_BRNP:       encodeBranch(0b101),
	OP_BRZP:       encodeBranch(0b011),
	OP_BRNZP:      encodeBranch(0b111),
	OP_NOP:        encodeFixed(WORD_NOP),
	OP_JMP:        encodeBase(OPCODE_JMP),
	OP_RET:        encodeFixed(WORD_RET),
	OP_JSR:        encodeJsr,
	OP_JSRR:       encodeBase(OPCODE_JSR),
	OP_LDB:        encodeMemory(OPCODE_LDB),
	OP_LDW:        encodeMemory(OPCODE_LDW),
	OP_STB:        encodeMemory(OPCODE_STB),
	OP_STW:        encodeMemory(OPCODE_STW),
	OP_LEA:        encodeLea,
	OP_LSHF:       encodeShift(0b00),
	OP_RSHFL:      encodeShift(0b01),
	OP_RSHFA:      encodeShift(0b11),
	OP_TRAP:       encodeTrap,
	OP_HALT:       encodeFixed(WORD_HALT),
	OP_RTI:        encodeFixed(WORD_RTI),
	DIR_ORIG:      encodeNothing,
	DIR_FILL:      encodeFill,
	DIR_BLKW:      encodeBlock,
	DIR_STRINGZ:   encodeString,
	DIR_END:       encodeNothing,
}

// makeOp packs an opcode and its operand fields.
func makeOp(opcode uint16, fields uint16) uint16 {
	return (opcode << 12) | (fields & 0x0fff)
}

// registers parses a list of register operands.
func registers(words ...string) (regs []uint16, err error) {
	regs = make([]uint16, len(words))
	for n, word := range words {
		regs[n], err = parseRegister(word)
		if err != nil {
			return
		}
	}
	return
}

func encodeNothing(sc *scope, stmt *Statement) (words []uint16, err error) {
	return
}

func encodeFixed(word uint16) encoder {
	return func(sc *scope, stmt *Statement) (words []uint16, err error) {
		err = stmt.want(0)
		if err != nil {
			return
		}
		words = []uint16{word}
		return
	}
}

// encodeOperate handles 'OP DR, SR1, SR2' and 'OP DR, SR1, imm5'.
func encodeOperate(opcode uint16) encoder {
	return func(sc *scope, stmt *Statement) (words []uint16, err error) {
		err = stmt.want(3)
		if err != nil {
			return
		}

		regs, err := registers(stmt.Operands[:2]...)
		if err != nil {
			return
		}
		word := makeOp(opcode, (regs[0]<<9)|(regs[1]<<6))

		arg := stmt.Operands[2]
		if arg[0] == 'R' || arg[0] == 'r' {
			var sr2 uint16
			sr2, err = parseRegister(arg)
			if err != nil {
				return
			}
			word |= sr2
		} else {
			var imm5 uint16
			imm5, err = sc.immediate(arg, signedField(5))
			if err != nil {
				return
			}
			word |= (1 << 5) | imm5
		}

		words = []uint16{word}
		return
	}
}

// encodeNot is 'XOR DR, SR, #-1'.
func encodeNot(sc *scope, stmt *Statement) (words []uint16, err error) {
	err = stmt.want(2)
	if err != nil {
		return
	}

	regs, err := registers(stmt.Operands...)
	if err != nil {
		return
	}

	words = []uint16{makeOp(OPCODE_XOR, (regs[0]<<9)|(regs[1]<<6)|(1<<5)|0x1f)}
	return
}

func encodeBranch(nzp uint16) encoder {
	return func(sc *scope, stmt *Statement) (words []uint16, err error) {
		err = stmt.want(1)
		if err != nil {
			return
		}

		offset9, err := sc.offset(stmt.Operands[0], 9)
		if err != nil {
			return
		}

		words = []uint16{makeOp(OPCODE_BR, (nzp<<9)|offset9)}
		return
	}
}

// encodeBase handles 'OP BaseR'.
func encodeBase(opcode uint16) encoder {
	return func(sc *scope, stmt *Statement) (words []uint16, err error) {
		err = stmt.want(1)
		if err != nil {
			return
		}

		base, err := parseRegister(stmt.Operands[0])
		if err != nil {
			return
		}

		words = []uint16{makeOp(opcode, base<<6)}
		return
	}
}

func encodeJsr(sc *scope, stmt *Statement) (words []uint16, err error) {
	err = stmt.want(1)
	if err != nil {
		return
	}

	offset11, err := sc.offset(stmt.Operands[0], 11)
	if err != nil {
		return
	}

	words = []uint16{makeOp(OPCODE_JSR, (1<<11)|offset11)}
	return
}

// encodeMemory handles 'OP DR, BaseR, offset6' loads and stores.
func encodeMemory(opcode uint16) encoder {
	return func(sc *scope, stmt *Statement) (words []uint16, err error) {
		err = stmt.want(3)
		if err != nil {
			return
		}

		regs, err := registers(stmt.Operands[:2]...)
		if err != nil {
			return
		}

		offset6, err := sc.immediate(stmt.Operands[2], signedField(6))
		if err != nil {
			return
		}

		words = []uint16{makeOp(opcode, (regs[0]<<9)|(regs[1]<<6)|offset6)}
		return
	}
}

func encodeLea(sc *scope, stmt *Statement) (words []uint16, err error) {
	err = stmt.want(2)
	if err != nil {
		return
	}

	dr, err := parseRegister(stmt.Operands[0])
	if err != nil {
		return
	}

	offset9, err := sc.offset(stmt.Operands[1], 9)
	if err != nil {
		return
	}

	words = []uint16{makeOp(OPCODE_LEA, (dr<<9)|offset9)}
	return
}

// encodeShift handles 'OP DR, SR, amount4'.
func encodeShift(kind uint16) encoder {
	return func(sc *scope, stmt *Statement) (words []uint16, err error) {
		err = stmt.want(3)
		if err != nil {
			return
		}

		regs, err := registers(stmt.Operands[:2]...)
		if err != nil {
			return
		}

		amount4, err := sc.immediate(stmt.Operands[2], unsignedField(4))
		if err != nil {
			return
		}

		words = []uint16{makeOp(OPCODE_SHF, (regs[0]<<9)|(regs[1]<<6)|(kind<<4)|amount4)}
		return
	}
}

func encodeTrap(sc *scope, stmt *Statement) (words []uint16, err error) {
	err = stmt.want(1)
	if err != nil {
		return
	}

	trapvect8, err := sc.immediate(stmt.Operands[0], unsignedField(8))
	if err != nil {
		return
	}

	words = []uint16{makeOp(OPCODE_TRAP, trapvect8)}
	return
}

func encodeFill(sc *scope, stmt *Statement) (words []uint16, err error) {
	err = stmt.want(1)
	if err != nil {
		return
	}

	value, err := sc.address(stmt.Operands[0])
	if err != nil {
		return
	}

	words = []uint16{value}
	return
}

func encodeBlock(sc *scope, stmt *Statement) (words []uint16, err error) {
	count, err := sc.blockCount(stmt)
	if err != nil {
		return
	}

	words = make([]uint16, count)
	return
}

func encodeString(sc *scope, stmt *Statement) (words []uint16, err error) {
	words, err = sc.stringWords(stmt)
	if err != nil {
		return
	}

	words = append(words, 0)
	return
}

// Encode is the second pass. It walks the statements again with the
// finished symbol table, producing the program image.
func (asm *Assembler) Encode(stmts []Statement, symbols *SymbolTable) (prog *Program, err error) {
	loc := newLocator()
	var units []Unit

	for n := range stmts {
		stmt := &stmts[n]

		if asm.Verbose {
			log.Printf("pass2 %04X %v: %v\n", loc.addr, stmt.LineNo, stmt.Text)
		}

		units, err = encodeStatement(&loc, stmt, symbols, units)
		if err != nil {
			err = &ErrAssembly{LineNo: stmt.LineNo, Line: stmt.Text, Err: err}
			return
		}

		if stmt.Mnemonic == DIR_END {
			break
		}
	}

	prog = &Program{
		Origin:  loc.origin,
		Units:   units,
		Symbols: symbols,
	}

	return
}

// encodeStatement appends the units of one statement.
func encodeStatement(loc *locator, stmt *Statement, symbols *SymbolTable, units []Unit) (out []Unit, err error) {
	out = units
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
		sc.pc = loc.addr
	}

	if len(stmt.Label) != 0 {
		_, err = loc.here()
		if err != nil {
			return
		}
	}

	if !stmt.Mnemonic.Valid() && stmt.Mnemonic != MNEMONIC_NONE {
		err = ErrInstructionUnknown(stmt.Mnemonic.String())
		return
	}

	words, err := encoders[stmt.Mnemonic](sc, stmt)
	if err != nil {
		return
	}

	size, err := sc.size(stmt)
	if err != nil {
		return
	}
	if size != len(words)*WORD_SIZE {
		log.Fatalf("line %d: %v encoded %d bytes, laid out as %d", stmt.LineNo, stmt.Mnemonic, len(words)*WORD_SIZE, size)
	}

	for n, word := range words {
		out = append(out, Unit{
			Addr:   uint16(loc.addr + n*WORD_SIZE),
			Word:   word,
			LineNo: stmt.LineNo,
			Line:   stmt.Text,
		})
	}

	err = loc.advance(size)
	return
}
