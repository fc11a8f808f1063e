package minnow

// file diag.go contains the diagnostic records produced while scanning and
// interpreting Minnow source. The interpreter never prints; it collects
// Diagnostics in source order and leaves rendering to whatever is driving it.

import "fmt"

// Category classifies a Diagnostic by the stage of interpretation that
// produced it.
type Category int

const (
	// Lexical diagnostics come from scanning. They are not recoverable;
	// tokenization stops at the first one.
	Lexical Category = iota

	// Syntax diagnostics come from grammar mismatches during parsing.
	Syntax

	// Semantic diagnostics come from use of undeclared variables or
	// redeclaration of existing ones.
	Semantic

	// Runtime diagnostics come from evaluation, which for Minnow means
	// division by zero.
	Runtime
)

// String returns the category name as used in rendered diagnostics.
func (c Category) String() string {
	switch c {
	case Lexical:
		return "Lexical"
	case Syntax:
		return "Syntax"
	case Semantic:
		return "Semantic"
	case Runtime:
		return "Runtime"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Diagnostic is a single problem found in a Minnow program. Line and Col give
// the 1-based position of the offending token.
type Diagnostic struct {
	Category Category
	Line     int
	Col      int
	Message  string
}

// String renders the diagnostic in the form
// "<Category> Error [line L, col C]: <message>".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s Error [line %d, col %d]: %s", d.Category, d.Line, d.Col, d.Message)
}

func diagFromToken(cat Category, t token, format string, a ...interface{}) Diagnostic {
	return Diagnostic{
		Category: cat,
		Line:     t.line,
		Col:      t.col,
		Message:  fmt.Sprintf(format, a...),
	}
}
