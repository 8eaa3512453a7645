package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/amirasaad/finance/infra/initializer"
	"github.com/amirasaad/finance/pkg/config"
	"github.com/fatih/color"
	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("finance", flag.ContinueOnError)
	global.SetOutput(stderr)
	memory := global.Bool("memory", false, "keep accounts in memory instead of the database")
	envFile := global.String("env-file", ".env", "environment file to load")
	noColor := global.Bool("no-color", false, "disable colored output")
	global.Usage = func() { usage(stderr) }
	if err := global.Parse(args); err != nil {
		return 2
	}
	if global.NArg() == 0 {
		usage(stderr)
		return 2
	}

	if *noColor || !isTerminal(stdout) {
		color.NoColor = true
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(stderr, "Failed to load configuration:", err)
		return 1
	}
	deps, err := initializer.Initialize(ctx, cfg, initializer.Options{Memory: *memory, LogOutput: stderr})
	if err != nil {
		fmt.Fprintln(stderr, "Failed to initialize:", err)
		return 1
	}
	defer deps.Close() //nolint:errcheck

	c := &cli{accounts: deps.Accounts, out: stdout, errOut: stderr}
	if err := c.dispatch(ctx, global.Args()); err != nil {
		if errors.Is(err, errUsage) {
			return 2
		}
		c.fail(err)
		return 1
	}
	return 0
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: finance [-memory] [-env-file path] [-no-color] <command> [arguments]")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  create -name <name> -type <type> [-balance n] [-currency BRL] [-default] [-inactive] [-description s] [-color s]")
	fmt.Fprintln(w, "  list [-type t] [-name q] [-active]")
	fmt.Fprintln(w, "  get <id>")
	fmt.Fprintln(w, "  update <id> [-name s] [-type t] [-balance n] [-active=bool] [-default=bool] [-description s] [-color s]")
	fmt.Fprintln(w, "  delete <id>")
	fmt.Fprintln(w, "  deposit <id> <amount> [currency]")
	fmt.Fprintln(w, "  withdraw <id> <amount> [currency]")
	fmt.Fprintln(w, "  count")
	fmt.Fprintln(w, "  seed [file.csv]")
	fmt.Fprintln(w, "Types: corrente, poupanca, investimento, cartao_credito, dinheiro")
}
