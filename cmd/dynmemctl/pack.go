package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/dynmem/internal/writer"
	"github.com/joshuapare/dynmem/mem/strpack"
)

var (
	packFile     string
	packEncoding string
	packDump     bool
	packOut      string
)

// newSink returns where pack --out sends the block.
var newSink = func(path string) writer.Sink {
	return &writer.FileWriter{Path: path}
}

func init() {
	rootCmd.AddCommand(newPackCmd())
}

func newPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack [strings...]",
		Short: "Pack strings into one offset-table block",
		Long: `The pack command lays out its arguments as a single packed block: a table
of little-endian offsets ending in a zero slot, followed by the NUL-terminated
strings. Arguments from a YAML profile come first.

Example:
  dynmemctl pack java -jar app.jar
  dynmemctl pack --file launch.yaml --dump
  dynmemctl pack --encoding windows-1252 café --json
  dynmemctl pack java -version --out argv.bin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(args)
		},
	}
	cmd.Flags().StringVarP(&packFile, "file", "f", "", "YAML argument profile")
	cmd.Flags().
		StringVar(&packEncoding, "encoding", "", "Transcode strings first (overrides the profile)")
	cmd.Flags().BoolVar(&packDump, "dump", false, "Hex dump the packed block")
	cmd.Flags().StringVarP(&packOut, "out", "o", "", "Also write the block to this file")
	return cmd
}

type packResult struct {
	Encoding string   `json:"encoding,omitempty"`
	Size     int      `json:"size"`
	Count    int      `json:"count"`
	Offsets  []int    `json:"offsets"`
	Strings  []string `json:"strings"`
}

func runPack(args []string) error {
	strs := args
	encName := packEncoding
	if packFile != "" {
		printVerbose("Loading profile: %s\n", packFile)
		prof, err := loadProfile(packFile)
		if err != nil {
			return err
		}
		strs = append(prof.Args, args...)
		if encName == "" {
			encName = prof.Encoding
		}
	}

	enc, err := lookupEncoding(encName)
	if err != nil {
		return err
	}

	s, err := newSession()
	if err != nil {
		return err
	}

	printVerbose("Packing %d strings\n", len(strs))
	p, err := strpack.PackEncoded(s.c, strs, enc)
	if err != nil {
		s.printSummary()
		return fmt.Errorf("failed to pack: %w", err)
	}

	if packOut != "" {
		if err := newSink(packOut).WriteBlock(p.Bytes()); err != nil {
			p.Free(s.c)
			return fmt.Errorf("failed to write block: %w", err)
		}
		printVerbose("Wrote %d bytes to %s\n", p.Size(), packOut)
	}

	res := describe(p, encName)
	var dump string
	if packDump {
		dump = hex.Dump(p.Bytes())
	}
	p.Free(s.c)

	if jsonOut {
		return printJSON(res)
	}
	printPacked(res, dump)
	s.printSummary()
	return nil
}

func describe(p *strpack.Packed, encName string) packResult {
	return packResult{
		Encoding: encName,
		Size:     p.Size(),
		Count:    p.Len(),
		Offsets:  p.Offsets(),
		Strings:  p.Strings(),
	}
}

// printPacked prints a block's layout, followed by dump when it is not empty.
func printPacked(res packResult, dump string) {
	printInfo("%s %d bytes\n", paint(labelStyle, "Size:"), res.Size)
	printInfo("%s %d\n", paint(labelStyle, "Strings:"), res.Count)
	for i, str := range res.Strings {
		printInfo("  [%d] @%d %q\n", i, res.Offsets[i], str)
	}
	printInfo("  %s\n", paint(mutedStyle, fmt.Sprintf("[%d] @0 (terminator)", res.Count)))
	if dump != "" {
		printInfo("\n%s", dump)
	}
}
