package minnow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_symbolTable_declareAndLookup(t *testing.T) {
	assert := assert.New(t)

	st := newSymbolTable()

	_, ok := st.lookup("a")
	assert.False(ok)

	assert.True(st.declare("a", 12))

	// declare-then-immediately-lookup observes the new entry
	v, ok := st.lookup("a")
	assert.True(ok)
	assert.Equal(12, v)

	// second declare fails and does not overwrite
	assert.False(st.declare("a", 99))
	v, _ = st.lookup("a")
	assert.Equal(12, v)
}

func Test_symbolTable_namesAreExact(t *testing.T) {
	assert := assert.New(t)

	st := newSymbolTable()
	assert.True(st.declare("val", 1))

	_, ok := st.lookup("Val")
	assert.False(ok)
	_, ok = st.lookup("val ")
	assert.False(ok)
}
