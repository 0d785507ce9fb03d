// Command myrkle
//
// Inspect accounts, token holdings, NFTs, and order books on the XRP
// Ledger, and compose unsigned transactions for an external signer.
//
// Each operation has a -help flag that explains it in more detail.
// For instance
//
//	myrkle book -help
//
// explains the purpose and usage of the book operation.
//
// There is a set of global flags such as -config to specify the
// configuration directory, where myrkle expects to find one or more
// *.cfg files.  These global flags apply to all operations.
//
// Each operation has its own set of flags, which if used must appear
// after the operation name.
//
// For a list of available operations and global flags, run
//
//	myrkle -help
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/rubblelabs/ripple/data"
	"src.d10.dev/command"
	"src.d10.dev/command/config"

	"github.com/ObiajuluM/myrkle/internal/cmd"
)

// Use `go get src.d10.dev/dumbdown` to fetch dumbdown tool.
//go:generate sh -c "go doc | dumbdown > README.md"

const LedgerSequenceInterval = 10

var (
	// -as flag, the originator when composing transactions
	asFlag = flag.String("as", "", "Compose transactions as this address or nickname.")

	asAccount *data.Account
	asTag     *uint32
)

func main() {
	command.RegisterCommand(command.Command{
		Application: "myrkle",
		Description: "Inspect XRP Ledger accounts and compose unsigned transactions.",
	})

	_, err := command.Config()
	if errors.Cause(err) == config.ConfigNotFound {
		// not a problem, we'll use defaults
		command.Info(err)
		err = nil
	}
	command.CheckUsage(err)

	// this command requires an operation
	if len(flag.CommandLine.Args()) < 1 {
		command.CheckUsage(errors.New("command requires an operation"))
	}

	// default prefix for operation
	log.SetPrefix(fmt.Sprintf("myrkle %s: ", flag.CommandLine.Args()[0]))

	// Default -as <address> from configuration file.
	as := *asFlag
	if as == "" {
		if c, err := cmd.Config(); err == nil {
			as = c.GetAccount()
		}
	}
	if as != "" {
		parsed, err := cmd.ParseAccountArg([]string{as})
		command.CheckUsage(err)
		asAccount = &parsed[0].Account
		asTag = parsed[0].TagPointer()
	}

	err = command.CurrentOperation().Operate()

	glog.Flush() // We use glog, and rubblelabs library uses glog.
	command.CheckUsage(err)

	command.Exit()
}
