package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"src.d10.dev/command"

	"github.com/ObiajuluM/myrkle/internal/cmd"
	"github.com/ObiajuluM/myrkle/tx"
	"github.com/ObiajuluM/myrkle/wallet"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     opBalance,
		Name:        "balance",
		Syntax:      "balance <account> [...]",
		Description: `Operation "balance" shows spendable XRP, net of reserves.`,
	})
}

func opBalance() error {
	command.CheckUsage(command.ParseOperationFlagSet())

	argument := command.OperationFlagSet.Args()
	if len(argument) == 0 {
		return errors.New("operation requires <account> argument")
	}
	accounts, err := cmd.ParseAccountArg(argument)
	command.Check(err)

	client, err := ledgerClient()
	command.Check(err)

	table := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', tabwriter.Debug)
	fmt.Fprintln(table, "Account\t Spendable XRP\t Owned Objects\t Settings\t")
	for _, acct := range accounts {
		balance, err := wallet.XRPBalance(client, acct.Account.String())
		if err != nil {
			command.Errorf("balance failed for %s: %s", cmd.FormatAccount(acct.Account), err)
			continue
		}
		fmt.Fprintf(table, "%s\t %s\t %d\t %s\t\n",
			cmd.FormatAccount(acct.Account), balance.Spendable, balance.ObjectCount,
			flagNames(tx.AccountRootFlags, balance.Flags))
	}
	return table.Flush()
}
