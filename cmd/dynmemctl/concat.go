package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/dynmem/mem/strpack"
)

var (
	concatTarget  string
	concatReserve int
)

func init() {
	rootCmd.AddCommand(newConcatCmd())
}

func newConcatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "concat [strings...]",
		Short: "Concatenate strings into a growing NUL-terminated buffer",
		Long: `The concat command appends its arguments to an optional starting target,
reallocating only when the tracked capacity is too small. --reserve sets the
capacity the buffer is first allocated with.

Example:
  dynmemctl concat foo "" bar
  dynmemctl concat --target hello " world" --reserve 64 -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConcat(args)
		},
	}
	cmd.Flags().StringVar(&concatTarget, "target", "", "Initial buffer contents")
	cmd.Flags().IntVar(&concatReserve, "reserve", 0, "Capacity to allocate the buffer with")
	return cmd
}

type concatResult struct {
	Result   string `json:"result"`
	Length   int    `json:"length"`
	Capacity int    `json:"capacity"`
}

func runConcat(args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	capacity := concatReserve
	var buf []byte
	if concatTarget != "" {
		printVerbose("Starting from target %q\n", concatTarget)
		if buf, err = strpack.Append(s.c, nil, &capacity, concatTarget); err != nil {
			s.printSummary()
			return fmt.Errorf("failed to create target: %w", err)
		}
	}

	buf, err = strpack.Append(s.c, buf, &capacity, args...)
	if err != nil {
		s.printSummary()
		return fmt.Errorf("failed to concatenate: %w", err)
	}

	res := concatResult{
		Result:   strpack.String(buf),
		Length:   strpack.Len(buf),
		Capacity: capacity,
	}
	s.c.Free(buf)

	if jsonOut {
		return printJSON(res)
	}

	printInfo("%s %q\n", paint(labelStyle, "Result:"), res.Result)
	printInfo("%s %d\n", paint(labelStyle, "Length:"), res.Length)
	printInfo("%s %d\n", paint(labelStyle, "Capacity:"), res.Capacity)
	s.printSummary()
	return nil
}
