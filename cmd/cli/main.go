package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

const defaultServerURL = "http://localhost:3333"

const usage = `Usage: cli <command> [arguments]

Commands:
  create    <cpf> <name>                 register a customer
  show      <cpf>                        show the customer
  rename    <cpf> <name>                 change the customer's name
  deposit   <cpf> <amount> [description] deposit funds
  withdraw  <cpf> <amount>               withdraw funds
  statement <cpf> [YYYY-MM-DD]           list statements, optionally of one day
  balance   <cpf>                        show the balance

The server is read from FINLEDGER_URL (default ` + defaultServerURL + `).
`

var (
	okColor    = color.New(color.FgGreen, color.Bold)
	errColor   = color.New(color.FgRed, color.Bold)
	labelColor = color.New(color.FgCyan)
	credit     = color.New(color.FgGreen)
	debit      = color.New(color.FgRed)
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	serverURL := os.Getenv("FINLEDGER_URL")
	if serverURL == "" {
		serverURL = defaultServerURL
	}
	os.Exit(run(os.Args[1:], os.Stdout, &client{baseURL: serverURL}))
}

var errUsage = errors.New("invalid arguments")

func run(args []string, out io.Writer, c *client) int {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return 2
	}
	err := dispatch(args[0], args[1:], out, c)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		errColor.Fprintln(out, "Error:", err) //nolint: errcheck
		fmt.Fprint(out, usage)
		return 2
	default:
		errColor.Fprintln(out, "Error:", err) //nolint: errcheck
		return 1
	}
}

func dispatch(cmd string, args []string, out io.Writer, c *client) error {
	need := func(n int) error {
		if len(args) < n {
			return fmt.Errorf("%w: %s needs %d argument(s)", errUsage, cmd, n)
		}
		return nil
	}

	switch cmd {
	case "create":
		if err := need(2); err != nil {
			return err
		}
		if err := c.createAccount(args[0], strings.Join(args[1:], " ")); err != nil {
			return err
		}
		okColor.Fprintf(out, "Account created for %s\n", args[0]) //nolint: errcheck
	case "show":
		if err := need(1); err != nil {
			return err
		}
		cust, err := c.getAccount(args[0])
		if err != nil {
			return err
		}
		labelColor.Fprint(out, "ID:   ") //nolint: errcheck
		fmt.Fprintln(out, cust.ID)
		labelColor.Fprint(out, "CPF:  ") //nolint: errcheck
		fmt.Fprintln(out, cust.Cpf)
		labelColor.Fprint(out, "Name: ") //nolint: errcheck
		fmt.Fprintln(out, cust.Name)
		printStatements(out, cust.Statements)
	case "rename":
		if err := need(2); err != nil {
			return err
		}
		if err := c.updateAccount(args[0], strings.Join(args[1:], " ")); err != nil {
			return err
		}
		okColor.Fprintln(out, "Account updated") //nolint: errcheck
	case "deposit":
		if err := need(2); err != nil {
			return err
		}
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		if err := c.deposit(args[0], strings.Join(args[2:], " "), amount); err != nil {
			return err
		}
		okColor.Fprintf(out, "Deposited %s\n", amount) //nolint: errcheck
	case "withdraw":
		if err := need(2); err != nil {
			return err
		}
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		if err := c.withdraw(args[0], amount); err != nil {
			return err
		}
		okColor.Fprintf(out, "Withdrew %s\n", amount) //nolint: errcheck
	case "statement":
		if err := need(1); err != nil {
			return err
		}
		date := ""
		if len(args) > 1 {
			date = args[1]
		}
		statements, err := c.statements(args[0], date)
		if err != nil {
			return err
		}
		printStatements(out, statements)
	case "balance":
		if err := need(1); err != nil {
			return err
		}
		balance, err := c.balance(args[0])
		if err != nil {
			return err
		}
		labelColor.Fprint(out, "Balance: ") //nolint: errcheck
		fmt.Fprintln(out, balance.String())
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	return nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a number", errUsage, s)
	}
	return amount, nil
}

func printStatements(out io.Writer, statements []statement) {
	if len(statements) == 0 {
		fmt.Fprintln(out, "No statements")
		return
	}
	for _, st := range statements {
		sign, c := "+", credit
		if st.Type == "debit" {
			sign, c = "-", debit
		}
		fmt.Fprintf(out, "%-32s ", st.CreatedAt)
		c.Fprintf(out, "%s%s", sign, st.Amount.String()) //nolint: errcheck
		if st.Description != "" {
			fmt.Fprintf(out, "  %s", st.Description)
		}
		fmt.Fprintln(out)
	}
}
