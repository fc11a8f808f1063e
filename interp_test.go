package minnow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Exec_output(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "empty program",
			input:  "",
			expect: nil,
		},
		{
			name:   "comments and whitespace only",
			input:  "// nothing\n\n  // more nothing\n",
			expect: nil,
		},
		{
			name:   "print a literal",
			input:  "print(42);",
			expect: []string{"42"},
		},
		{
			name:   "precedence and associativity",
			input:  "print(1 + 2 * 3 - 4 / 2);",
			expect: []string{"5"},
		},
		{
			name:   "parens override precedence",
			input:  "print((1 + 2) * 3);",
			expect: []string{"9"},
		},
		{
			name:   "declare then print",
			input:  "int a = 2 + 3 * 4; print(a);",
			expect: []string{"14"},
		},
		{
			name:   "declared variable usable in later declaration",
			input:  "int a = 3; int b = a * a; print(b);",
			expect: []string{"9"},
		},
		{
			name:   "multiple prints in source order",
			input:  "print(1); print(2); print(3);",
			expect: []string{"1", "2", "3"},
		},
		{
			name:   "division truncates toward zero",
			input:  "print(7 / 2); print((0 - 7) / 2);",
			expect: []string{"3", "-3"},
		},
		{
			name:   "left associativity of subtraction",
			input:  "print(10 - 4 - 3);",
			expect: []string{"3"},
		},
		{
			name:   "left associativity of division",
			input:  "print(100 / 5 / 2);",
			expect: []string{"10"},
		},
		{
			name:   "negative result",
			input:  "print(2 - 5);",
			expect: []string{"-3"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			res := New().Exec(tc.input)

			assert.False(res.Failed())
			assert.Empty(res.Diagnostics)
			assert.Equal(tc.expect, res.Output)
		})
	}
}

func Test_Exec_diagnostics(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expectCat Category
		expectMsg string
		line      int
		col       int
	}{
		{
			name:      "undeclared variable",
			input:     "print(x);",
			expectCat: Semantic,
			expectMsg: "undeclared variable 'x'",
			line:      1,
			col:       7,
		},
		{
			name:      "use before declaration",
			input:     "print(a);\nint a = 1;",
			expectCat: Semantic,
			expectMsg: "undeclared variable 'a'",
			line:      1,
			col:       7,
		},
		{
			name:      "redeclaration reports the later declaration",
			input:     "int a = 1;\nint a = 2;",
			expectCat: Semantic,
			expectMsg: "variable 'a' is already declared",
			line:      2,
			col:       5,
		},
		{
			name:      "division by zero at operator position",
			input:     "print(1 / 0);",
			expectCat: Runtime,
			expectMsg: "division by zero",
			line:      1,
			col:       9,
		},
		{
			name:      "missing semicolon",
			input:     "print(1)",
			expectCat: Syntax,
			expectMsg: "expected ';' but found end of file ('EOF')",
			line:      1,
			col:       9,
		},
		{
			name:      "missing close paren",
			input:     "print(1;",
			expectCat: Syntax,
			expectMsg: "expected ')' but found ';' (';')",
			line:      1,
			col:       8,
		},
		{
			name:      "bad statement start",
			input:     ";",
			expectCat: Syntax,
			expectMsg: "expected 'int' or 'print' at start of statement but found ';' (';')",
			line:      1,
			col:       1,
		},
		{
			name:      "bad factor",
			input:     "print(1 + );",
			expectCat: Syntax,
			expectMsg: "expected expression but found ')' (')')",
			line:      1,
			col:       11,
		},
		{
			name:      "lexical error",
			input:     "int a = 12abc;",
			expectCat: Lexical,
			expectMsg: "invalid token 'a' after integer literal",
			line:      1,
			col:       9,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			res := New().Exec(tc.input)

			assert.True(res.Failed())
			if !assert.NotEmpty(res.Diagnostics) {
				return
			}

			d := res.Diagnostics[0]
			assert.Equal(tc.expectCat, d.Category)
			assert.Equal(tc.expectMsg, d.Message)
			assert.Equal(tc.line, d.Line)
			assert.Equal(tc.col, d.Col)
		})
	}
}

func Test_Exec_suppressionAfterError(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expectOutput []string
		expectDiags  int
	}{
		{
			name: "output before the error survives, output after is suppressed",
			input: `int a = 2 + 3 * 4;
print(a);
print((a - 2) / 0);
print(a);`,
			expectOutput: []string{"14"},
			expectDiags:  1,
		},
		{
			name:         "declaration after error is suppressed, making later use undeclared",
			input:        "print(x);\nint b = 1;\nprint(b);",
			expectOutput: nil,
			// undeclared x, then undeclared b in the final print
			expectDiags: 2,
		},
		{
			name:         "statement error does not cascade into the next statement",
			input:        "int = 5;\nprint(1 + 1);",
			expectOutput: nil,
			expectDiags:  1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			res := New().Exec(tc.input)

			assert.True(res.Failed())
			assert.Equal(tc.expectOutput, res.Output)
			assert.Len(res.Diagnostics, tc.expectDiags)
		})
	}
}

func Test_Exec_multipleDiagnosticsInOneRun(t *testing.T) {
	assert := assert.New(t)

	res := New().Exec("print(x);\nprint(y);\nprint(1 / 0);")

	assert.True(res.Failed())
	assert.Len(res.Diagnostics, 3)
	assert.Equal(Semantic, res.Diagnostics[0].Category)
	assert.Equal(Semantic, res.Diagnostics[1].Category)
	assert.Equal(Runtime, res.Diagnostics[2].Category)
	assert.Empty(res.Output)
}

func Test_Exec_variablesPersistAcrossCalls(t *testing.T) {
	assert := assert.New(t)

	it := New()

	res := it.Exec("int a = 6;")
	assert.False(res.Failed())

	res = it.Exec("print(a * 7);")
	assert.False(res.Failed())
	assert.Equal([]string{"42"}, res.Output)

	// declare-once holds for the life of the interpreter
	res = it.Exec("int a = 1;")
	assert.True(res.Failed())
	assert.Equal(Semantic, res.Diagnostics[0].Category)
}

func Test_Exec_errorDoesNotStickAcrossCalls(t *testing.T) {
	assert := assert.New(t)

	it := New()

	res := it.Exec("print(nope);")
	assert.True(res.Failed())

	res = it.Exec("print(1);")
	assert.False(res.Failed())
	assert.Equal([]string{"1"}, res.Output)
}

func Test_Exec_zeroValueInterpreter(t *testing.T) {
	assert := assert.New(t)

	var it Interpreter
	res := it.Exec("int n = 5; print(n);")

	assert.False(res.Failed())
	assert.Equal([]string{"5"}, res.Output)
}

func Test_Exec_deterministic(t *testing.T) {
	assert := assert.New(t)

	const program = "int a = 3; int b = 4; print(a * a + b * b);"

	first := New().Exec(program)
	second := New().Exec(program)

	assert.Equal(first, second)
	assert.Equal([]string{"25"}, first.Output)
}
