// Package minnow is an interpreter for the Minnow language, a minimal
// imperative language with exactly one type (the native signed integer), one
// kind of declaration, and one statement that does anything visible:
//
//	int a = 2 + 3 * 4;
//	print(a);           // prints 14
//
// Arithmetic supports +, -, *, / with the usual precedence and
// left-associativity, and parenthesization. Variables are declare-once; there
// is no reassignment, and no loops, conditionals, or functions.
//
// Source is executed with an Interpreter, which scans it, then parses it with
// a recursive-descent parser that evaluates as it goes; no syntax tree is
// ever built. Problems in the source are collected as Diagnostics rather than
// halting the run, so one Exec surfaces as many independent errors as it can.
package minnow

// Result is the outcome of executing one program, in the order things
// happened: one Output entry per executed print statement, and every
// Diagnostic the run produced.
type Result struct {
	// Output holds the decimal text of each successfully executed print
	// statement, in source order.
	Output []string

	// Diagnostics holds every problem found, in the order encountered. Empty
	// for a clean run.
	Diagnostics []Diagnostic
}

// Failed returns whether the run produced any diagnostics. A failed run
// never produces output; once any diagnostic is recorded, print output and
// variable declaration are suppressed for the rest of the run.
func (r Result) Failed() bool {
	return len(r.Diagnostics) > 0
}

// Interpreter executes Minnow programs. The zero value is ready to use.
//
// Variables declared by one call to Exec remain declared for later calls on
// the same Interpreter, which is what makes interactive sessions work;
// redeclaring one of them in a later call is still a semantic error. Use a
// fresh Interpreter for each independent program.
//
// An Interpreter is not safe for concurrent use.
type Interpreter struct {
	syms *symbolTable
}

// New creates an Interpreter with no variables declared.
func New() *Interpreter {
	return &Interpreter{
		syms: newSymbolTable(),
	}
}

// Exec scans and executes source as a complete Minnow program and returns
// what it printed along with any diagnostics.
//
// A lexical error aborts the run immediately; the Result then carries that
// one diagnostic and nothing else. All other problems are recoverable:
// parsing continues past them to collect further diagnostics, with print
// output and declarations suppressed from the first problem on.
func (it *Interpreter) Exec(source string) Result {
	if it.syms == nil {
		it.syms = newSymbolTable()
	}

	tokens, lexDiag := tokenize(source)
	if lexDiag != nil {
		return Result{Diagnostics: []Diagnostic{*lexDiag}}
	}

	in := interp{
		tokens: tokens,
		syms:   it.syms,
	}
	in.program()

	return Result{
		Output:      in.output,
		Diagnostics: in.diags,
	}
}
