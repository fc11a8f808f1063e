package minnow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Diagnostic_String(t *testing.T) {
	testCases := []struct {
		name   string
		d      Diagnostic
		expect string
	}{
		{
			name:   "syntax",
			d:      Diagnostic{Category: Syntax, Line: 3, Col: 14, Message: "expected ';' but found ')' (')')"},
			expect: "Syntax Error [line 3, col 14]: expected ';' but found ')' (')')",
		},
		{
			name:   "runtime",
			d:      Diagnostic{Category: Runtime, Line: 1, Col: 9, Message: "division by zero"},
			expect: "Runtime Error [line 1, col 9]: division by zero",
		},
		{
			name:   "lexical",
			d:      Diagnostic{Category: Lexical, Line: 2, Col: 1, Message: "unexpected character '@'"},
			expect: "Lexical Error [line 2, col 1]: unexpected character '@'",
		},
		{
			name:   "semantic",
			d:      Diagnostic{Category: Semantic, Line: 4, Col: 5, Message: "variable 'a' is already declared"},
			expect: "Semantic Error [line 4, col 5]: variable 'a' is already declared",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(tc.expect, tc.d.String())
		})
	}
}

func Test_Result_binaryRoundTrip(t *testing.T) {
	assert := assert.New(t)

	orig := Result{
		Output: []string{"14", "-3"},
		Diagnostics: []Diagnostic{
			{Category: Runtime, Line: 3, Col: 12, Message: "division by zero"},
		},
	}

	data, err := orig.MarshalBinary()
	assert.NoError(err)

	var decoded Result
	err = decoded.UnmarshalBinary(data)
	assert.NoError(err)

	assert.Equal(orig, decoded)
}
