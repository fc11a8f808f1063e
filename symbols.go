package minnow

// symbolTable is a flat store of declared variables. Minnow has no scoping,
// no shadowing, and no reassignment; declaration is the only write a variable
// ever receives, and a name may be declared exactly once.
type symbolTable struct {
	vars map[string]int
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		vars: make(map[string]int),
	}
}

// declare adds name to the table with the given value. It returns false
// without modifying the table if name is already declared.
func (st *symbolTable) declare(name string, value int) bool {
	if _, ok := st.vars[name]; ok {
		return false
	}
	st.vars[name] = value
	return true
}

// lookup returns the current value of name and whether name has been
// declared.
func (st *symbolTable) lookup(name string) (int, bool) {
	v, ok := st.vars[name]
	return v, ok
}
