/*
Minnow interprets a Minnow source file, or starts an interactive session.

In file mode, the entire file is read into memory and executed front to back.
Each successfully executed print statement writes one line to stdout, and
every problem found in the source is reported to stderr with its position;
reporting continues past the first error so a single run surfaces as many
diagnostics as practical.

Usage:

	minnow [flags] SOURCE_FILE
	minnow [flags] -i

The flags are:

	-version
		Give the current version of Minnow and then exit.

	-i/-interactive
		Start an interactive session instead of reading a source file.
		Statements are executed as they are entered and variables stay
		declared for the whole session.

	-d/-direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading input even if launched in a tty
		with stdin and stdout. Only meaningful with -i.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dekarrin/minnow"
	"github.com/dekarrin/minnow/internal/version"
)

const (

	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitProgramError indicates an unsuccessful program execution due to
	// diagnostics in the interpreted source.
	ExitProgramError

	// ExitInitError indicates an unsuccessful program execution due to a
	// problem reading the source file or bad invocation.
	ExitInitError
)

var (
	returnCode      int   = ExitSuccess
	flagVersion     *bool = flag.Bool("version", false, "Gives the version info")
	interactiveMode bool
	forceDirect     bool
)

func init() {
	const (
		interactiveUsage = "start an interactive session instead of interpreting a file"
		forceDirectUsage = "force reading directly from stdin instead of going through GNU readline where possible"
	)
	flag.BoolVar(&interactiveMode, "interactive", false, interactiveUsage)
	flag.BoolVar(&interactiveMode, "i", false, interactiveUsage+" (shorthand)")
	flag.BoolVar(&forceDirect, "direct", false, forceDirectUsage)
	flag.BoolVar(&forceDirect, "d", false, forceDirectUsage+" (shorthand)")
}

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			// we are panicking, make sure we dont lose the panic just because
			// we checked
			panic("unrecoverable panic occured")
		} else {
			os.Exit(returnCode)
		}
	}()

	flag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if interactiveMode {
		runConsole()
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <source_file>\n", os.Args[0])
		returnCode = ExitInitError
		return
	}

	runFile(flag.Arg(0))
}

func runFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open file '%s'\n", path)
		returnCode = ExitInitError
		return
	}

	res := minnow.New().Exec(string(data))

	for _, line := range res.Output {
		fmt.Println(line)
	}
	for _, d := range res.Diagnostics {
		fmt.Fprintln(os.Stderr, d.String())
	}

	if res.Failed() {
		fmt.Fprintf(os.Stderr, "\nParsing/execution failed due to errors above.\n")
		returnCode = ExitProgramError
	}
}

func runConsole() {
	con, initErr := minnow.NewConsole(os.Stdin, os.Stdout, forceDirect)
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer con.Close()

	err := con.RunUntilQuit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitProgramError
		return
	}
}
