package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeNumber(t *testing.T) {
	assert := assert.New(t)

	sc := &scope{symbols: NewSymbolTable(), pc: 0x3000, lineno: 9}

	table := [](struct {
		word  string
		value int64
	}){
		{"#10", 10},
		{"#-10", -10},
		{"10", 10},
		{"x1F", 0x1F},
		{"X1f", 0x1F},
		{"0x1F", 0x1F},
		{"0XfF", 0xFF},
		{"$(PC)", 0x3000},
		{"$(LINENO * 2)", 18},
		{"$(-3)", -3},
		{"$(7.0)", 7},
	}

	for _, entry := range table {
		value, err := sc.number(entry.word)
		assert.NoError(err, entry.word)
		assert.Equal(entry.value, value, entry.word)
	}

	for _, word := range []string{"", "#", "x", "0x", "#1.5", "abc", "x3g"} {
		_, err := sc.number(word)
		assert.ErrorIs(err, ErrImmediateInvalid(""), word)
	}

	for _, word := range []string{"$(7.5)", "$(None)", "$(", "$(1/0)"} {
		_, err := sc.number(word)
		assert.Error(err, word)
	}
}

func TestParseRegister(t *testing.T) {
	assert := assert.New(t)

	for n, word := range []string{"R0", "r1", "R2", "r3", "R4", "R5", "R6", "R7"} {
		reg, err := parseRegister(word)
		assert.NoError(err)
		assert.Equal(uint16(n), reg)
	}

	for _, word := range []string{"", "R", "R8", "R10", "X1", "R-"} {
		_, err := parseRegister(word)
		assert.ErrorIs(err, ErrRegisterInvalid(""), word)
	}
}

func TestParseString(t *testing.T) {
	assert := assert.New(t)

	words, err := parseString(`"\n\r\t\e\0\\\""`)
	assert.NoError(err)
	assert.Equal([]uint16{'\n', '\r', '\t', 0x1B, 0, '\\', '"'}, words)

	words, err = parseString(`""`)
	assert.NoError(err)
	assert.Equal(0, len(words))

	for _, word := range []string{``, `"`, `abc`, `"a"b"`, `"a\"`, `"\x"`} {
		_, err := parseString(word)
		assert.ErrorIs(err, ErrStringMalformed, word)
	}
}

func FuzzFieldPack(f *testing.F) {
	for _, bits := range []uint8{4, 5, 6, 8, 9, 11} {
		f.Add(bits, int64(0))
		f.Add(bits, int64(-1))
		f.Add(bits, int64(1)<<(bits-1))
		f.Add(bits, -(int64(1) << (bits - 1)))
	}

	f.Fuzz(func(t *testing.T, bits uint8, value int64) {
		assert := assert.New(t)

		width := int(bits%15) + 1
		fd := signedField(width)

		packed, err := fd.pack(value)
		if value < fd.min || value > fd.max {
			var ir *ErrImmediateRange
			assert.ErrorAs(err, &ir)
			return
		}

		assert.NoError(err)
		assert.Zero(packed &^ fd.mask())
		assert.Equal(int(value), signExtend(packed, width))
	})
}
