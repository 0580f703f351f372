package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/dynmem/mem/array"
)

var (
	growStride   int
	growCapacity int
	growIndices  []int
)

func init() {
	rootCmd.AddCommand(newGrowCmd())
}

func newGrowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Trace capacity as items are written at chosen indices",
		Long: `The grow command writes one stride-sized item at each index in turn and
prints how the array's capacity changes. Capacity grows in whole increments of
5 elements, jumping straight past far indices in a single reallocation.

Example:
  dynmemctl grow --indices 0,4,5,17
  dynmemctl grow --stride 16 --capacity 3 --indices 2,40 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrow()
		},
	}
	cmd.Flags().IntVar(&growStride, "stride", 4, "Element size in bytes")
	cmd.Flags().IntVar(&growCapacity, "capacity", 0, "Capacity to create the array with")
	cmd.Flags().IntSliceVar(&growIndices, "indices", nil, "Comma-separated indices to write")
	return cmd
}

type growStep struct {
	Index  int `json:"index"`
	Before int `json:"before"`
	After  int `json:"after"`
}

func runGrow() error {
	if len(growIndices) == 0 {
		return errors.New("no indices given (use --indices)")
	}

	s, err := newSession()
	if err != nil {
		return err
	}

	capacity := growCapacity
	var arr []byte
	steps := make([]growStep, 0, len(growIndices))
	for _, idx := range growIndices {
		var item []byte
		if growStride > 0 {
			item = make([]byte, growStride)
			item[0] = byte(idx)
		}

		before := capacity
		arr, err = array.AppendItem(s.c, arr, idx, &capacity, item, growStride)
		if err != nil {
			s.printSummary()
			return fmt.Errorf("failed to write index %d: %w", idx, err)
		}
		steps = append(steps, growStep{Index: idx, Before: before, After: capacity})
	}
	s.c.Free(arr)

	if jsonOut {
		return printJSON(steps)
	}

	for _, st := range steps {
		if st.After != st.Before {
			change := fmt.Sprintf("%d -> %d", st.Before, st.After)
			printInfo("index %d: capacity %s\n", st.Index, paint(grewStyle, change))
		} else {
			printInfo("index %d: capacity %d\n", st.Index, st.After)
		}
	}
	s.printSummary()
	return nil
}
