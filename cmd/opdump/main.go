// Command opdump is a small diagnostic CLI over the zkEVM opcode
// interpreter: it can enumerate the supported instruction set and execute
// a standalone bytecode string against an in-memory environment, without
// needing a real chain or state database.
package main

import (
	"fmt"
	"os"

	"github.com/ledgerwatch/log/v3"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "opdump",
		Short: "zkEVM opcode interpreter diagnostics",
	}
	root.AddCommand(newListCmd())
	root.AddCommand(newRunCmd())

	if err := root.Execute(); err != nil {
		log.New().Error("opdump failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
