package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/dynmem/mem/strpack"
)

var inspectDump bool

func init() {
	rootCmd.AddCommand(newInspectCmd())
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Validate a packed block file and list its strings",
		Long: `The inspect command checks that a file holds a well-formed packed block
(slot table in bounds, every offset pointing at a NUL-terminated string) and
prints its layout the same way pack does.

Example:
  dynmemctl pack java -version --out argv.bin
  dynmemctl inspect argv.bin --dump`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args)
		},
	}
	cmd.Flags().BoolVar(&inspectDump, "dump", false, "Hex dump the block")
	return cmd
}

func runInspect(args []string) error {
	path := args[0]

	printVerbose("Reading block: %s\n", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read block: %w", err)
	}

	p, err := strpack.Open(data)
	if err != nil {
		return fmt.Errorf("invalid block %s: %w", path, err)
	}

	res := describe(p, "")
	if jsonOut {
		return printJSON(res)
	}

	var dump string
	if inspectDump {
		dump = hex.Dump(data)
	}
	printPacked(res, dump)
	return nil
}
