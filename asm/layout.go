package asm

const (
	DEFAULT_ORIGIN = uint16(0x3000) // Origin when no .ORIG is given.
	ADDRESS_LIMIT  = 0x10000        // One past the last byte address.
	WORD_SIZE      = 2              // Bytes per instruction word.
)

// locator tracks the origin and running address through a pass.
type locator struct {
	origin uint16
	addr   int
	placed bool // Set once a label or word has been placed.
}

func newLocator() locator {
	return locator{origin: DEFAULT_ORIGIN, addr: int(DEFAULT_ORIGIN)}
}

// setOrigin applies a .ORIG directive. Once anything has been placed the
// origin may only restate the current address.
func (loc *locator) setOrigin(value uint16) (err error) {
	if value%WORD_SIZE != 0 {
		err = ErrOriginMisaligned
		return
	}

	if loc.placed {
		if int(value) != loc.addr {
			err = ErrOriginDiscontiguous
		}
		return
	}

	loc.origin = value
	loc.addr = int(value)
	return
}

// here returns the current address for a label.
func (loc *locator) here() (addr uint16, err error) {
	if loc.addr >= ADDRESS_LIMIT {
		err = ErrAddressOverflow
		return
	}

	loc.placed = true
	addr = uint16(loc.addr)
	return
}

// advance moves the running address past size bytes.
func (loc *locator) advance(size int) (err error) {
	if size == 0 {
		return
	}

	if loc.addr+size > ADDRESS_LIMIT {
		err = ErrAddressOverflow
		return
	}

	loc.addr += size
	loc.placed = true
	return
}

// want checks the operand count of a statement.
func (stmt *Statement) want(count int) (err error) {
	if len(stmt.Operands) != count {
		err = &ErrOperandCount{Mnemonic: stmt.Mnemonic, Want: count, Have: len(stmt.Operands)}
	}
	return
}

// origin parses the operand of a .ORIG directive.
func (sc *scope) origin(stmt *Statement) (value uint16, err error) {
	err = stmt.want(1)
	if err != nil {
		return
	}

	return sc.immediate(stmt.Operands[0], unsignedField(16))
}

// blockCount parses the operand of a .BLKW directive.
func (sc *scope) blockCount(stmt *Statement) (count int, err error) {
	err = stmt.want(1)
	if err != nil {
		return
	}

	value, err := sc.immediate(stmt.Operands[0], unsignedField(16))
	count = int(value)
	return
}

// stringWords parses the operand of a .STRINGZ directive, without the
// terminating null.
func (sc *scope) stringWords(stmt *Statement) (words []uint16, err error) {
	if len(stmt.Operands) == 0 {
		err = ErrStringMalformed
		return
	}

	err = stmt.want(1)
	if err != nil {
		return
	}

	return parseString(stmt.Operands[0])
}

// size returns the number of bytes a statement occupies. Both passes use
// it, so they always agree on addresses.
func (sc *scope) size(stmt *Statement) (size int, err error) {
	switch stmt.Mnemonic {
	case MNEMONIC_NONE, DIR_ORIG, DIR_END:
		size = 0
	case DIR_BLKW:
		var count int
		count, err = sc.blockCount(stmt)
		size = WORD_SIZE * count
	case DIR_STRINGZ:
		var words []uint16
		words, err = sc.stringWords(stmt)
		size = WORD_SIZE * (len(words) + 1)
	default:
		size = WORD_SIZE
	}

	return
}
