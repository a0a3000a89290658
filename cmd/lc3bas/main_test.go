package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lc3b/asm"
)

func TestDefine(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{"PUTS=x22", "puts=0x22", "PUTS=22"} {
		assembler := &asm.Assembler{}
		assert.NoError(define(assembler, text), text)

		prog, err := assembler.Parse(strings.NewReader(".FILL PUTS"))
		assert.NoError(err, text)
		if err == nil {
			assert.Equal([]uint16{0x22}, prog.Binary(), text)
		}
	}

	for _, text := range []string{"PUTS", "=x22", "PUTS=", "PUTS=x10000", "PUTS=zz"} {
		assert.Error(define(&asm.Assembler{}, text), text)
	}
}

func TestObjectName(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("prog.obj", objectName("prog.asm"))
	assert.Equal("dir/prog.s.obj", objectName("dir/prog.s"))
}
