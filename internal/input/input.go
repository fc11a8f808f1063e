// Package input contains line readers used to get Minnow statements from CLI
// or other sources of input during an interactive session.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Reader is a source of lines of Minnow source entered by the user. It must
// have Close called on it before disposal.
type Reader interface {
	// ReadLine blocks until a line containing non-space characters is read,
	// then returns it with surrounding space trimmed. At end of input it
	// returns io.EOF.
	ReadLine() (string, error)

	// Close releases any resources held by the Reader.
	Close() error
}

// DirectReader implements Reader on any generic input stream directly. It can
// be used with any io.Reader but does not sanitize the input of control and
// escape sequences.
//
// DirectReader should not be used directly; instead, create one with
// [NewDirectReader].
type DirectReader struct {
	r *bufio.Reader
}

// InteractiveReader implements Reader on stdin using a Go implementation of
// the GNU Readline library. This keeps input clear of all typing and editing
// escape sequences and enables the use of line history. This should in
// general only be used when directly connected to a TTY.
//
// InteractiveReader should not be used directly; instead, create one with
// [NewInteractiveReader].
type InteractiveReader struct {
	rl     *readline.Instance
	prompt string
}

// NewDirectReader creates a DirectReader with a buffered reader opened on r.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{
		r: bufio.NewReader(r),
	}
}

// NewInteractiveReader creates an InteractiveReader and initializes readline
// with the given prompt.
func NewInteractiveReader(prompt string) (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveReader{
		rl:     rl,
		prompt: prompt,
	}, nil
}

// Close is here so DirectReader implements Reader. The DirectReader does not
// itself hold resources, but callers should treat it as though it must have
// Close called on it.
func (dr *DirectReader) Close() error {
	return nil
}

// Close cleans up readline resources associated with the InteractiveReader.
func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}

// ReadLine reads the next non-blank line from the stream. At end of input the
// returned string will be empty and error will be io.EOF. If any other error
// occurs, the returned string will be empty and error will be that error.
func (dr *DirectReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = dr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)
	}

	return line, nil
}

// ReadLine reads the next non-blank line from stdin via readline. At end of
// input the returned string will be empty and error will be io.EOF. If any
// other error occurs, the returned string will be empty and error will be
// that error.
func (ir *InteractiveReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = ir.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)
	}

	return line, nil
}

// SetPrompt updates the prompt to the given text.
func (ir *InteractiveReader) SetPrompt(p string) {
	ir.prompt = p
	ir.rl.SetPrompt(p)
}

// GetPrompt gets the current prompt.
func (ir *InteractiveReader) GetPrompt() string {
	return ir.prompt
}
