package minnow

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Console_RunUntilQuit(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    []string
		notExpect []string
	}{
		{
			name:   "print uses variable from earlier line",
			input:  "int a = 7;\nprint(a * 6);\nquit\n",
			expect: []string{"42\n", "Goodbye\n"},
		},
		{
			name:   "exit works like quit",
			input:  "exit\n",
			expect: []string{"Goodbye\n"},
		},
		{
			name:   "end of input ends the session",
			input:  "print(1);\n",
			expect: []string{"1\n", "Goodbye\n"},
		},
		{
			name:   "diagnostics are rendered",
			input:  "print(x);\nquit\n",
			expect: []string{"Semantic Error [line 1, col 7]: undeclared variable 'x'\n"},
		},
		{
			name:      "error on one line does not poison the next",
			input:     "print(1 / 0);\nprint(5);\nquit\n",
			expect:    []string{"Runtime Error [line 1, col 9]: division by zero\n", "5\n"},
			notExpect: []string{"0\n"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			out := &bytes.Buffer{}
			con, err := NewConsole(strings.NewReader(tc.input), out, true)
			if !assert.NoError(err) {
				return
			}
			defer con.Close()

			err = con.RunUntilQuit()
			assert.NoError(err)

			for _, want := range tc.expect {
				assert.Contains(out.String(), want)
			}
			for _, dontWant := range tc.notExpect {
				assert.NotContains(out.String(), dontWant)
			}
		})
	}
}
