// sensorctl is the operator CLI for a running sensorhub: it mints admin
// tokens, provisions device credentials and pulls daily CSV exports.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const usage = `Usage: sensorctl <command> [flags]

Commands:
  token      print an admin JWT signed with secretKey.admin
  provision  create a device or rotate its secret
  export     write <out>/<day>/<device>.csv for every device with data

Run "sensorctl <command> --help" for the flags of a command.
`

type command func(args []string, stdout io.Writer) error

var commands = map[string]command{
	"token":     runToken,
	"provision": runProvision,
	"export":    runExport,
}

func main() {
	// SECRETKEY_ADMIN may come from the same .env the server reads.
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprint(os.Stderr, usage)

		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprint(os.Stderr, usage)

		return fmt.Errorf("unknown command %q", args[0])
	}

	return cmd(args[1:], stdout)
}

func newFlagSet(name string) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("sensorctl "+name, pflag.ContinueOnError)
	flagSet.SortFlags = false

	return flagSet
}
