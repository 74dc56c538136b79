package main

import (
	"fmt"

	"github.com/spf13/cobra"

	vm "github.com/0xPolygonHermez/zkevm-opcodes/internal/vm"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every opcode this interpreter recognizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for i := 0; i < 256; i++ {
				op := vm.OpCode(i)
				name := op.String()
				if name == fmt.Sprintf("opcode 0x%x not defined", i) {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "0x%02x %s\n", i, name)
			}
			return nil
		},
	}
}
