package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"src.d10.dev/command"

	"github.com/ObiajuluM/myrkle/internal/cmd"
	"github.com/ObiajuluM/myrkle/wallet"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     opTokens,
		Name:        "tokens",
		Syntax:      "tokens [-issued] [-managed] <account>",
		Description: `Operation "tokens" lists issued-currency holdings on an account's trust lines.`,
	})
}

func opTokens() error {
	issuedFlag := command.OperationFlagSet.Bool("issued", false, "show tokens the account has issued (its obligations)")
	managedFlag := command.OperationFlagSet.Bool("managed", false, "show tokens the account holds directly from issuers")

	command.CheckUsage(command.ParseOperationFlagSet())

	argument := command.OperationFlagSet.Args()
	if len(argument) != 1 {
		return errors.New("operation requires <account> argument")
	}
	accounts, err := cmd.ParseAccountArg(argument)
	command.Check(err)
	account := accounts[0].Account.String()

	client, err := ledgerClient()
	command.Check(err)

	table := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', tabwriter.DiscardEmptyColumns)

	switch {
	case *issuedFlag:
		tokens, err := wallet.IssuedTokens(client, account)
		command.Check(err)
		fmt.Fprintln(table, "Token\t Issued\t Domain\t")
		for _, t := range tokens {
			fmt.Fprintf(table, "%s\t %s\t %s\t\n", t.Token, t.Amount, t.Domain)
		}
	case *managedFlag:
		tokens, err := wallet.ManagedTokens(client, account)
		command.Check(err)
		fmt.Fprintln(table, "Token\t Issuer\t Held\t Domain\t")
		for _, t := range tokens {
			fmt.Fprintf(table, "%s\t %s\t %s\t %s\t\n", t.Token, t.Issuer, t.Amount, t.Domain)
		}
	default:
		lines, err := wallet.Tokens(client, account)
		command.Check(err)
		fmt.Fprintln(table, "Token\t Issuer\t Balance\t Limit\t Frozen\t No Ripple\t")
		for _, line := range lines {
			fmt.Fprintf(table, "%s\t %s\t %s\t %s\t %v\t %v\t\n",
				line.Token, line.Issuer, line.Balance, line.Limit, line.Frozen, line.NoRipple)
		}
	}
	return table.Flush()
}
