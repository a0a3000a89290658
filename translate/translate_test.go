package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	Use("en-US")
	assert.Equal("Unknown instruction 'FOO'", From("Unknown instruction '%v'", "FOO"))
}

func TestUseEmpty(t *testing.T) {
	assert := assert.New(t)

	Use()
	assert.Equal("line 7", From("line %d", 7))
}
