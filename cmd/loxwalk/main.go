// Command loxwalk runs Lox source files or starts an interactive REPL.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/autarklox/loxwalk/internal/lox"
)

func main() {
	cmd := &cli.Command{
		Name:      "loxwalk",
		Usage:     "A tree-walking interpreter for the Lox language",
		ArgsUsage: "[script]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colorized diagnostics",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) > 1 {
		fmt.Println("Usage: loxwalk [script]")
		os.Exit(lox.ExitCompileError)
	}

	reporter := newReporter(cmd.Bool("no-color"))
	if len(args) == 1 {
		runFile(args[0], reporter)
	} else {
		runPrompt(reporter)
	}
	return nil
}

func newReporter(noColor bool) lox.Reporter {
	if noColor || !term.IsTerminal(int(os.Stderr.Fd())) {
		return lox.NewSimpleReporter(os.Stderr)
	}
	return lox.NewColorReporter(os.Stderr)
}

// runPrompt runs the interpreter in REPL mode: one line of source per
// iteration, with the compile-error flag reset between lines so a typo
// doesn't end the session. Runtime errors are not reset: the global
// environment carries whatever state a failed call left it in.
func runPrompt(reporter lox.Reporter) {
	interpreter := lox.NewInterpreter(os.Stdout, reporter, true)
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		lox.Interpret(scanner.Text(), interpreter, reporter)
		reporter.Reset()
	}
}

// runFile runs source read from path, exiting with a sysexits status
// code when anything went wrong.
func runFile(path string, reporter lox.Reporter) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(lox.ExitCompileError)
	}

	interpreter := lox.NewInterpreter(os.Stdout, reporter, false)
	if code := lox.Interpret(string(src), interpreter, reporter); code != lox.ExitOK {
		os.Exit(code)
	}
}
