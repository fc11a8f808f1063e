package minnow

// file interp.go contains the recursive-descent parser for the Minnow
// grammar, fused with evaluation; expressions are computed as they are
// parsed and no syntax tree is ever built. The grammar:
//
//	Program     -> Stmt* EOF
//	Stmt        -> Declaration | PrintStmt
//	Declaration -> "int" IDENTIFIER "=" Expr ";"
//	PrintStmt   -> "print" "(" Expr ")" ";"
//	Expr        -> Term (("+" | "-") Term)*
//	Term        -> Factor (("*" | "/") Factor)*
//	Factor      -> INTEGER | IDENTIFIER | "(" Expr ")"
//
// One method per nonterminal. All run state lives in the interp struct; there
// are no globals and recursion depth directly mirrors grammar nesting.

import "strconv"

// interp is the state of a single run over one token sequence. The hadErr
// flag is sticky: once any diagnostic has been recorded, parsing continues so
// further problems can still be reported, but declaration writes and print
// output are suppressed for the rest of the run.
type interp struct {
	tokens []token
	pos    int

	hadErr bool
	syms   *symbolTable

	output []string
	diags  []Diagnostic
}

// cur returns the current token without consuming it.
func (in *interp) cur() token {
	return in.tokens[in.pos]
}

// advance consumes the current token and returns it. It never advances past
// the end-of-text token.
func (in *interp) advance() token {
	t := in.tokens[in.pos]
	if t.class != tcEndOfText {
		in.pos++
	}
	return t
}

// check reports whether the current token has the given class.
func (in *interp) check(class tokenClass) bool {
	return in.cur().class == class
}

func (in *interp) report(d Diagnostic) {
	in.diags = append(in.diags, d)
	in.hadErr = true
}

// expect consumes and returns the current token if it has the given class.
// On a mismatch it records a syntax diagnostic and returns the mismatched
// token without consuming it, so the caller proceeds on placeholder data
// instead of desynchronizing further.
func (in *interp) expect(class tokenClass) token {
	t := in.cur()
	if t.class == class {
		return in.advance()
	}

	in.report(diagFromToken(Syntax, t, "expected %s but found %s ('%s')", class, t.class, t.lexeme))
	return t
}

// factor parses and evaluates Factor -> INTEGER | IDENTIFIER | "(" Expr ")".
func (in *interp) factor() int {
	t := in.cur()

	if t.class == tcNumber {
		in.advance()
		return t.intVal
	}

	if t.class == tcIdentifier {
		in.advance()
		v, ok := in.syms.lookup(t.lexeme)
		if !ok {
			in.report(diagFromToken(Semantic, t, "undeclared variable '%s'", t.lexeme))
			return 0
		}
		return v
	}

	if t.class == tcLeftParen {
		in.advance()
		val := in.expr()
		in.expect(tcRightParen)
		return val
	}

	in.report(diagFromToken(Syntax, t, "expected expression but found %s ('%s')", t.class, t.lexeme))

	// skip the bad token to guarantee forward progress
	if t.class != tcEndOfText {
		in.advance()
	}
	return 0
}

// term parses and evaluates Term -> Factor (("*" | "/") Factor)*. Division
// truncates toward zero; a zero divisor is a runtime diagnostic at the
// operator's position and yields 0 so evaluation can continue leftward.
func (in *interp) term() int {
	left := in.factor()

	for in.check(tcStar) || in.check(tcSlash) {
		op := in.advance()
		right := in.factor()

		if op.class == tcStar {
			left = left * right
		} else {
			if right == 0 {
				in.report(diagFromToken(Runtime, op, "division by zero"))
				left = 0
			} else {
				left = left / right
			}
		}
	}

	return left
}

// expr parses and evaluates Expr -> Term (("+" | "-") Term)*.
func (in *interp) expr() int {
	left := in.term()

	for in.check(tcPlus) || in.check(tcMinus) {
		op := in.advance()
		right := in.term()

		if op.class == tcPlus {
			left = left + right
		} else {
			left = left - right
		}
	}

	return left
}

// declaration parses Declaration -> "int" IDENTIFIER "=" Expr ";" and, if the
// run is still clean, writes the variable into the symbol table.
func (in *interp) declaration() {
	in.expect(tcInt)
	id := in.expect(tcIdentifier)
	in.expect(tcAssign)
	value := in.expr()
	in.expect(tcSemicolon)

	if in.hadErr {
		return
	}

	if !in.syms.declare(id.lexeme, value) {
		in.report(diagFromToken(Semantic, id, "variable '%s' is already declared", id.lexeme))
	}
}

// printStmt parses PrintStmt -> "print" "(" Expr ")" ";" and, if the run is
// still clean, records the value as an output line.
func (in *interp) printStmt() {
	in.expect(tcPrint)
	in.expect(tcLeftParen)
	value := in.expr()
	in.expect(tcRightParen)
	in.expect(tcSemicolon)

	if !in.hadErr {
		in.output = append(in.output, strconv.Itoa(value))
	}
}

// stmt dispatches on the current token to Declaration or PrintStmt. Any other
// leading token is a syntax diagnostic; that token is consumed so the next
// statement gets a fresh start.
func (in *interp) stmt() {
	t := in.cur()

	switch t.class {
	case tcInt:
		in.declaration()
	case tcPrint:
		in.printStmt()
	default:
		in.report(diagFromToken(Syntax, t, "expected 'int' or 'print' at start of statement but found %s ('%s')", t.class, t.lexeme))
		if t.class != tcEndOfText {
			in.advance()
		}
	}
}

// program parses Program -> Stmt* EOF, running every statement even after an
// error so all diagnostics in the source surface in one run.
func (in *interp) program() {
	for !in.check(tcEndOfText) {
		in.stmt()
	}
	in.expect(tcEndOfText)
}
