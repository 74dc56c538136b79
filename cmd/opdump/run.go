package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"github.com/spf13/cobra"

	vm "github.com/0xPolygonHermez/zkevm-opcodes/internal/vm"
	"github.com/0xPolygonHermez/zkevm-opcodes/internal/vm/config"
	"github.com/0xPolygonHermez/zkevm-opcodes/internal/vm/counters"
)

func newRunCmd() *cobra.Command {
	var configPath string
	var gasLimit uint64
	var inputHex string
	var deploy bool

	cmd := &cobra.Command{
		Use:   "run <hex-bytecode>",
		Short: "Execute a hex-encoded bytecode string against an in-memory environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
			if err != nil {
				return fmt.Errorf("decoding bytecode: %w", err)
			}
			input, err := hex.DecodeString(strings.TrimPrefix(inputHex, "0x"))
			if err != nil {
				return fmt.Errorf("decoding input: %w", err)
			}

			cfg := config.Default()
			if configPath != "" {
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}

			eei := newMemoryEEI()
			var contractAddr vm.Address
			contractAddr[19] = 0x01
			eei.SetCode(contractAddr, code)

			frame := vm.NewFrame(contractAddr, vm.Address{}, code, eei.GetCodeHash(contractAddr), input, new(uint256.Int), gasLimit, 0, false, deploy)
			defer frame.Release()

			tx := counters.NewTransaction(cfg.Limits())
			interp := vm.NewInterpreter(eei, vm.BlockContext{
				Difficulty: new(uint256.Int),
				BaseFee:    new(uint256.Int),
				ChainID:    new(uint256.Int),
				GetHash:    func(uint64) [32]byte { return [32]byte{} },
			}, vm.TxContext{GasPrice: new(uint256.Int)}, tx, vm.Config{
				CallDepthLimit: cfg.CallDepthLimit,
				MaxCodeSize:    cfg.MaxCodeSize,
			})

			ret, err := interp.Run(frame)
			fmt.Fprintf(cmd.OutOrStdout(), "return data: 0x%x\n", ret)
			fmt.Fprintf(cmd.OutOrStdout(), "gas used:    %d\n", gasLimit-frame.Gas)
			fmt.Fprintf(cmd.OutOrStdout(), "counters:    %+v\n", tx.Used())
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "outcome:     %v\n", err)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "outcome:     success")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.Flags().Uint64Var(&gasLimit, "gas", 1_000_000, "gas limit for the call")
	cmd.Flags().StringVar(&inputHex, "input", "", "hex-encoded call data")
	cmd.Flags().BoolVar(&deploy, "deploy", false, "run the bytecode as contract-creation init code")
	return cmd
}
