// Command commission prints the fee of every transaction in a CSV file.
//
// Usage:
//
//	commission [-env path] <input.csv>
//
// Fees are written to stdout, one per input record; logs go to stderr.
// Pass "-" to read records from stdin.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/snikolow/commission-calculator/infra/initializer"
	"github.com/snikolow/commission-calculator/pkg/config"
	"golang.org/x/term"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("commission", flag.ContinueOnError)
	flags.SetOutput(stderr)
	envFile := flags.String("env", ".env", "environment file, looked up from the working directory upwards")
	flags.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "Usage: commission [-env path] <input.csv>")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		printError(stderr, fmt.Errorf("failed to load configuration: %w", err))
		return exitFailure
	}

	deps, err := initializer.InitializeDependencies(cfg, stderr)
	if err != nil {
		printError(stderr, fmt.Errorf("failed to initialize dependencies: %w", err))
		return exitFailure
	}

	input, closeInput, err := openInput(flags.Arg(0), stdin)
	if err != nil {
		printError(stderr, err)
		return exitFailure
	}
	defer closeInput()

	if err := deps.Processor.Run(ctx, input, stdout); err != nil {
		printError(stderr, err)
		return exitFailure
	}
	return exitOK
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open the source file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// printError writes err in red when w is a terminal.
func printError(w io.Writer, err error) {
	c := color.New(color.FgRed, color.Bold)
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		c.DisableColor()
	}
	_, _ = c.Fprintf(w, "error: %v\n", err)
}
