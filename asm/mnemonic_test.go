package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMnemonic(t *testing.T) {
	assert := assert.New(t)

	for n := 1; n < mnemonicLimit; n++ {
		op := Mnemonic(n)
		assert.True(op.Valid(), "%d", n)
		assert.NotNil(encoders[op], op.String())

		name := op.String()
		assert.Equal(name, strings.ToUpper(name))

		found, ok := LookupMnemonic(strings.ToLower(name))
		assert.True(ok, name)
		assert.Equal(op, found)

		assert.Equal(strings.HasPrefix(name, "."), op.Directive(), name)
	}

	assert.False(MNEMONIC_NONE.Valid())
	assert.False(Mnemonic(mnemonicLimit).Valid())

	_, ok := LookupMnemonic("MOV")
	assert.False(ok)
	_, ok = LookupMnemonic("-")
	assert.False(ok)
}
