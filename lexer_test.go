package minnow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_tokenize_classSequence(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    []tokenClass
		expectErr bool
	}{
		{
			name:   "blank string",
			input:  "",
			expect: []tokenClass{tcEndOfText},
		},
		{
			name:   "whitespace only",
			input:  " \t\r\n  \n",
			expect: []tokenClass{tcEndOfText},
		},
		{
			name:   "comment only",
			input:  "// nothing here\n",
			expect: []tokenClass{tcEndOfText},
		},
		{
			name:   "comment at end of input with no newline",
			input:  "// nothing here",
			expect: []tokenClass{tcEndOfText},
		},
		{
			name:  "declaration",
			input: "int x = 8;",
			expect: []tokenClass{
				tcInt, tcIdentifier, tcAssign, tcNumber, tcSemicolon, tcEndOfText,
			},
		},
		{
			name:  "print with arithmetic",
			input: "print((a + 2) * b / 3 - 4);",
			expect: []tokenClass{
				tcPrint, tcLeftParen, tcLeftParen, tcIdentifier, tcPlus,
				tcNumber, tcRightParen, tcStar, tcIdentifier, tcSlash,
				tcNumber, tcMinus, tcNumber, tcRightParen, tcSemicolon,
				tcEndOfText,
			},
		},
		{
			name:   "keywords are case-sensitive",
			input:  "Int PRINT",
			expect: []tokenClass{tcIdentifier, tcIdentifier, tcEndOfText},
		},
		{
			name:   "underscore starts an identifier",
			input:  "_x1",
			expect: []tokenClass{tcIdentifier, tcEndOfText},
		},
		{
			name:   "keyword prefix is just an identifier",
			input:  "integer printer",
			expect: []tokenClass{tcIdentifier, tcIdentifier, tcEndOfText},
		},
		{
			name:   "comment runs to end of line only",
			input:  "int // x = 8;\ny",
			expect: []tokenClass{tcInt, tcIdentifier, tcEndOfText},
		},
		{
			name:   "slash is division not comment",
			input:  "a / b",
			expect: []tokenClass{tcIdentifier, tcSlash, tcIdentifier, tcEndOfText},
		},
		{
			name:      "letter glued to integer literal",
			input:     "12abc",
			expectErr: true,
		},
		{
			name:      "underscore glued to integer literal",
			input:     "3_",
			expectErr: true,
		},
		{
			name:      "unexpected character",
			input:     "int x = 8 @ 2;",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			tokens, diag := tokenize(tc.input)
			if tc.expectErr {
				assert.NotNil(diag)
				assert.Equal(Lexical, diag.Category)
				assert.Nil(tokens)
				return
			}
			assert.Nil(diag)

			actual := make([]tokenClass, len(tokens))
			for i := range tokens {
				actual[i] = tokens[i].class
			}

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_tokenize_positions(t *testing.T) {
	assert := assert.New(t)

	tokens, diag := tokenize("int a = 2;\n\tprint(a);")
	assert.Nil(diag)

	type pos struct {
		line int
		col  int
	}

	actual := make([]pos, len(tokens))
	for i := range tokens {
		actual[i] = pos{tokens[i].line, tokens[i].col}
	}

	// tab counts as a single column
	expect := []pos{
		{1, 1},  // int
		{1, 5},  // a
		{1, 7},  // =
		{1, 9},  // 2
		{1, 10}, // ;
		{2, 2},  // print
		{2, 7},  // (
		{2, 8},  // a
		{2, 9},  // )
		{2, 10}, // ;
		{2, 11}, // EOF
	}

	assert.Equal(expect, actual)
}

func Test_tokenize_values(t *testing.T) {
	assert := assert.New(t)

	tokens, diag := tokenize("0 42 007")
	assert.Nil(diag)
	assert.Len(tokens, 4)

	assert.Equal(0, tokens[0].intVal)
	assert.Equal(42, tokens[1].intVal)
	assert.Equal(7, tokens[2].intVal)
	assert.Equal("007", tokens[2].lexeme)
	assert.Equal("EOF", tokens[3].lexeme)
}

func Test_tokenize_lexicalErrorPosition(t *testing.T) {
	assert := assert.New(t)

	// reported at the start of the literal, not at the offending letter
	_, diag := tokenize("int x =\n  12abc;")
	assert.NotNil(diag)
	assert.Equal(Lexical, diag.Category)
	assert.Equal(2, diag.Line)
	assert.Equal(3, diag.Col)
	assert.Equal("invalid token 'a' after integer literal", diag.Message)
}
