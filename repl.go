package minnow

// file repl.go contains the interactive console that reads Minnow statements
// line by line and executes them against one persistent Interpreter, so
// variables declared on earlier lines stay usable on later ones.

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/minnow/internal/input"
	"github.com/dekarrin/rosed"
)

const consoleOutputWidth = 80

const consoleHelp = "Enter Minnow statements and they are executed " +
	"immediately. Declare an integer with \"int NAME = EXPR;\" and show a " +
	"value with \"print(EXPR);\". Variables stay declared for the whole " +
	"session. Type \"quit\" or \"exit\" to leave."

// Console runs an interactive Minnow session attached to an input stream and
// an output stream.
type Console struct {
	interp  *Interpreter
	in      input.Reader
	out     *bufio.Writer
	running bool
}

// NewConsole creates a console ready to operate on the given input and output
// streams. If nil is given for either stream, stdin or stdout is used for it.
//
// When the streams are the real terminal and forceDirectInput is not set,
// lines are read through readline so the user gets editing and history;
// otherwise input is read directly.
func NewConsole(inputStream io.Reader, outputStream io.Writer, forceDirectInput bool) (*Console, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	con := &Console{
		interp: New(),
		out:    bufio.NewWriter(outputStream),
	}

	useReadline := !forceDirectInput && inputStream == os.Stdin && outputStream == os.Stdout

	if useReadline {
		var err error
		con.in, err = input.NewInteractiveReader("minnow> ")
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		con.in = input.NewDirectReader(inputStream)
	}

	return con, nil
}

// Close closes all resources associated with the Console, including any
// readline-related resources created for interactive mode.
func (con *Console) Close() error {
	if con.running {
		return fmt.Errorf("cannot close a running console")
	}

	err := con.in.Close()
	if err != nil {
		return fmt.Errorf("close line reader: %w", err)
	}

	return nil
}

// RunUntilQuit begins reading statements from the input stream and executing
// them until the user quits or input ends.
func (con *Console) RunUntilQuit() error {
	intro := "Minnow interactive session. Type \"help\" for help, \"quit\" to leave.\n"
	if err := con.write(intro); err != nil {
		return err
	}

	con.running = true
	// so we dont have to remember to do this on every returned error condition
	defer func() {
		con.running = false
	}()

	for con.running {
		line, err := con.in.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("get line of input: %w", err)
		}

		switch strings.ToLower(line) {
		case "quit", "exit":
			con.running = false
			continue
		case "help":
			msg := rosed.Edit(consoleHelp).Wrap(consoleOutputWidth).String()
			if err := con.write(msg + "\n"); err != nil {
				return err
			}
			continue
		}

		res := con.interp.Exec(line)

		var sb strings.Builder
		for _, outLine := range res.Output {
			sb.WriteString(outLine)
			sb.WriteRune('\n')
		}
		for _, d := range res.Diagnostics {
			sb.WriteString(d.String())
			sb.WriteRune('\n')
		}

		if sb.Len() > 0 {
			if err := con.write(sb.String()); err != nil {
				return err
			}
		}
	}

	return con.write("Goodbye\n")
}

func (con *Console) write(s string) error {
	if _, err := con.out.WriteString(s); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := con.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}
