package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/amirasaad/finance/internal/fixtures/accounts"
	"github.com/amirasaad/finance/pkg/domain"
	"github.com/amirasaad/finance/pkg/domain/account"
	"github.com/amirasaad/finance/pkg/result"
	accountsvc "github.com/amirasaad/finance/pkg/service/account"
	"github.com/fatih/color"
)

var errUsage = errors.New("usage")

var (
	okColor    = color.New(color.FgGreen, color.Bold)
	errColor   = color.New(color.FgRed, color.Bold)
	labelColor = color.New(color.FgCyan)
	mutedColor = color.New(color.Faint)
)

type cli struct {
	accounts *accountsvc.UseCases
	out      io.Writer
	errOut   io.Writer
}

func (c *cli) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		usage(c.errOut)
		return errUsage
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "create":
		return c.create(ctx, rest)
	case "list":
		return c.list(ctx, rest)
	case "get":
		return c.get(ctx, rest)
	case "update":
		return c.update(ctx, rest)
	case "delete":
		return c.delete(ctx, rest)
	case "deposit":
		return c.move(ctx, "deposit", "Deposited", rest, c.accounts.Deposit.Execute)
	case "withdraw":
		return c.move(ctx, "withdraw", "Withdrew", rest, c.accounts.Withdraw.Execute)
	case "count":
		return c.count(ctx)
	case "seed":
		return c.seed(ctx, rest)
	case "help", "-h", "--help":
		usage(c.out)
		return nil
	default:
		fmt.Fprintln(c.errOut, "Unknown command:", cmd)
		usage(c.errOut)
		return errUsage
	}
}

func (c *cli) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.errOut)
	return fs
}

func (c *cli) create(ctx context.Context, args []string) error {
	fs := c.flags("create")
	var req accountsvc.CreateRequest
	fs.StringVar(&req.Name, "name", "", "account name")
	fs.StringVar(&req.Type, "type", "", "account type")
	fs.Float64Var(&req.Balance, "balance", 0, "opening balance")
	fs.StringVar(&req.Currency, "currency", "", "ISO 4217 currency code")
	fs.BoolVar(&req.IsDefault, "default", false, "mark as the default account")
	fs.StringVar(&req.Description, "description", "", "free text")
	fs.StringVar(&req.Color, "color", "", "display color")
	inactive := fs.Bool("inactive", false, "create the account inactive")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *inactive {
		active := false
		req.IsActive = &active
	}

	res := c.accounts.Create.Execute(ctx, req)
	if res.IsFail() {
		return res.Err()
	}
	okColor.Fprint(c.out, "Account created: ") //nolint:errcheck
	c.printAccount(res.Value().Account)
	return nil
}

func (c *cli) list(ctx context.Context, args []string) error {
	fs := c.flags("list")
	var req accountsvc.ListRequest
	fs.StringVar(&req.Type, "type", "", "filter by type")
	fs.StringVar(&req.Name, "name", "", "filter by name substring")
	fs.BoolVar(&req.ActiveOnly, "active", false, "only active accounts")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	res := c.accounts.List.Execute(ctx, req)
	if res.IsFail() {
		return res.Err()
	}
	accounts := res.Value().Accounts
	if len(accounts) == 0 {
		mutedColor.Fprintln(c.out, "No accounts found") //nolint:errcheck
		return nil
	}
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tBALANCE\tACTIVE\tDEFAULT")
	for _, a := range accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\t%t\n", a.ID(), a.Name(), a.Type(), a.Balance().Display(), a.IsActive(), a.IsDefault())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	mutedColor.Fprintf(c.out, "%d account(s)\n", res.Value().Total) //nolint:errcheck
	return nil
}

func (c *cli) get(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(c.errOut, "Usage: get <id>")
		return errUsage
	}
	res := c.accounts.GetByID.Execute(ctx, accountsvc.GetByIDRequest{ID: args[0]})
	if res.IsFail() {
		return res.Err()
	}
	if res.Value().Account == nil {
		mutedColor.Fprintf(c.out, "Account %s not found\n", args[0]) //nolint:errcheck
		return nil
	}
	c.printAccount(res.Value().Account)
	return nil
}

func (c *cli) update(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(c.errOut, "Usage: update <id> [flags]")
		return errUsage
	}
	fs := c.flags("update")
	name := fs.String("name", "", "new name")
	typ := fs.String("type", "", "new type")
	balance := fs.Float64("balance", 0, "new balance")
	active := fs.Bool("active", true, "active flag")
	isDefault := fs.Bool("default", false, "default flag")
	description := fs.String("description", "", "new description")
	colorHint := fs.String("color", "", "new display color")
	if err := fs.Parse(args[1:]); err != nil {
		return errUsage
	}

	req := accountsvc.UpdateRequest{ID: args[0]}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			req.Name = name
		case "type":
			req.Type = typ
		case "balance":
			req.Balance = balance
		case "active":
			req.IsActive = active
		case "default":
			req.IsDefault = isDefault
		case "description":
			req.Description = description
		case "color":
			req.Color = colorHint
		}
	})

	res := c.accounts.Update.Execute(ctx, req)
	if res.IsFail() {
		return res.Err()
	}
	okColor.Fprint(c.out, "Account updated: ") //nolint:errcheck
	c.printAccount(res.Value().Account)
	return nil
}

func (c *cli) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(c.errOut, "Usage: delete <id>")
		return errUsage
	}
	res := c.accounts.Delete.Execute(ctx, accountsvc.DeleteRequest{ID: args[0]})
	if res.IsFail() {
		return res.Err()
	}
	okColor.Fprintf(c.out, "Account %s deleted\n", res.Value().ID) //nolint:errcheck
	return nil
}

type moneyFunc func(context.Context, accountsvc.MoneyRequest) result.Result[accountsvc.MoneyResponse]

func (c *cli) move(ctx context.Context, cmd, verb string, args []string, exec moneyFunc) error {
	if len(args) < 2 || len(args) > 3 {
		fmt.Fprintf(c.errOut, "Usage: %s <id> <amount> [currency]\n", cmd)
		return errUsage
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[1], err)
	}
	req := accountsvc.MoneyRequest{ID: args[0], Amount: amount}
	if len(args) == 3 {
		req.Currency = args[2]
	}

	res := exec(ctx, req)
	if res.IsFail() {
		return res.Err()
	}
	a := res.Value().Account
	okColor.Fprintf(c.out, "%s %.2f. ", verb, amount) //nolint:errcheck
	fmt.Fprintf(c.out, "New balance of %s: %s\n", a.Name(), a.Balance().Display())
	return nil
}

func (c *cli) count(ctx context.Context) error {
	res := c.accounts.Count.Execute(ctx)
	if res.IsFail() {
		return res.Err()
	}
	labelColor.Fprint(c.out, "Total: ") //nolint:errcheck
	fmt.Fprintln(c.out, res.Value().Total)
	labelColor.Fprint(c.out, "Active: ") //nolint:errcheck
	fmt.Fprintln(c.out, res.Value().Active)
	return nil
}

// seed creates the accounts of a CSV file, or the embedded sample set.
// Names that already exist are skipped.
func (c *cli) seed(ctx context.Context, args []string) error {
	if len(args) > 1 {
		fmt.Fprintln(c.errOut, "Usage: seed [file.csv]")
		return errUsage
	}
	var path string
	if len(args) == 1 {
		path = args[0]
	}
	reqs, err := accounts.LoadAccountsCSV(path)
	if err != nil {
		return err
	}

	var created, skipped int
	for _, req := range reqs {
		res := c.accounts.Create.Execute(ctx, req)
		switch {
		case res.IsOk():
			created++
		case errors.Is(res.Err(), domain.ErrAlreadyExists):
			skipped++
		default:
			return fmt.Errorf("seed %q: %w", req.Name, res.Err())
		}
	}
	okColor.Fprintf(c.out, "Seeded %d account(s), %d skipped\n", created, skipped) //nolint:errcheck
	return nil
}

func (c *cli) printAccount(a *account.Account) {
	fmt.Fprintln(c.out, a.Name())
	row := func(label, value string) {
		if value == "" {
			return
		}
		labelColor.Fprintf(c.out, "  %-12s", label) //nolint:errcheck
		fmt.Fprintln(c.out, value)
	}
	row("ID", a.ID())
	row("Type", a.Type().String())
	row("Balance", a.Balance().Display())
	row("Active", strconv.FormatBool(a.IsActive()))
	row("Default", strconv.FormatBool(a.IsDefault()))
	row("Description", a.Description())
	row("Color", a.Color())
	row("Created", a.CreatedAt().Format("2006-01-02 15:04:05"))
}

func (c *cli) fail(err error) {
	errColor.Fprint(c.errOut, "Error: ") //nolint:errcheck
	fmt.Fprintln(c.errOut, err)
}
