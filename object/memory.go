// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package object

// WORDS_IN_MEM is the size of the simulator memory, in 16-bit words.
const WORDS_IN_MEM = 0x8000

// Memory is a simulator memory image. Each word holds its low byte at the
// even byte address and its high byte at the following odd address.
type Memory struct {
	words [WORDS_IN_MEM]uint16
}

// Load copies an image into memory, starting at the word that holds the
// image origin. The entry point is the byte address of the first word.
func (mem *Memory) Load(img *Image) (entry uint16, err error) {
	base := int(img.Origin >> 1)
	if base+len(img.Words) > WORDS_IN_MEM {
		err = ErrObjectTooLong
		return
	}

	copy(mem.words[base:], img.Words)
	entry = uint16(base << 1)

	return
}

// Word returns the word containing a byte address.
func (mem *Memory) Word(addr uint16) uint16 {
	return mem.words[addr>>1]
}

// Byte returns the byte at a byte address.
func (mem *Memory) Byte(addr uint16) uint8 {
	word := mem.Word(addr)
	if addr&1 == 1 {
		return uint8(word >> 8)
	}
	return uint8(word)
}
