package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"src.d10.dev/command"

	"github.com/ObiajuluM/myrkle/amount"
	"github.com/ObiajuluM/myrkle/indexer"
	"github.com/ObiajuluM/myrkle/internal/cmd"
	"github.com/ObiajuluM/myrkle/tx"
	"github.com/ObiajuluM/myrkle/wallet"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     opNFTs,
		Name:        "nfts",
		Syntax:      "nfts [-created] <account>",
		Description: `Operation "nfts" lists an account's NFTs; -created lists every token the account has minted, wherever held.`,
	})
}

func opNFTs() error {
	createdFlag := command.OperationFlagSet.Bool("created", false, "list tokens minted by the account, including tokens now held elsewhere")

	command.CheckUsage(command.ParseOperationFlagSet())

	argument := command.OperationFlagSet.Args()
	if len(argument) != 1 {
		return errors.New("operation requires <account> argument")
	}
	accounts, err := cmd.ParseAccountArg(argument)
	command.Check(err)
	account := accounts[0].Account.String()

	table := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', tabwriter.DiscardEmptyColumns)

	if *createdFlag {
		// held tokens come from rippled; minted-and-transferred
		// tokens only an indexer knows
		api, err := cmd.Indexer()
		command.Check(err)
		client, err := indexer.NewClient(api)
		command.Check(err)
		command.V(1).Infof("querying indexer %s", api)

		response, err := client.NFTsByIssuer(account)
		command.Check(err)

		fmt.Fprintln(table, "NFTokenID\t Owner\t Taxon\t Serial\t Fee %\t Flags\t URI\t")
		for _, token := range response.Data.NFTs {
			uri := token.URI
			if decoded, err := amount.DecodeText(uri); err == nil {
				uri = decoded
			}
			fmt.Fprintf(table, "%s\t %s\t %d\t %d\t %s\t %s\t %s\t\n",
				token.NFTokenID, token.Owner, token.Taxon, token.Sequence,
				amount.NFTFeeFromWire(token.TransferFee), flagNames(tx.NFTokenFlags, token.Flags), uri)
		}
		return table.Flush()
	}

	client, err := ledgerClient()
	command.Check(err)

	nfts, err := wallet.NFTs(client, account)
	command.Check(err)

	fmt.Fprintln(table, "NFTokenID\t Issuer\t Taxon\t Serial\t Fee %\t Flags\t URI\t")
	for _, token := range nfts {
		fmt.Fprintf(table, "%s\t %s\t %d\t %d\t %s\t %s\t %s\t\n",
			token.NFTokenID, token.Issuer, token.Taxon, token.Serial, token.TransferFee,
			flagNames(tx.NFTokenFlags, token.Flags), token.URI)
	}
	return table.Flush()
}
