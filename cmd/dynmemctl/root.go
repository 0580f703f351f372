package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/dynmem/cmd/dynmemctl/logger"
	"github.com/joshuapare/dynmem/mem/alloc"
	"github.com/joshuapare/dynmem/mem/diag"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	backend  string
	limit    int
	logLevel string
	logFile  string
	noColor  bool
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var closeLog = func() error { return nil }

var rootCmd = &cobra.Command{
	Use:   "dynmemctl",
	Short: "Exercise dynmem allocation primitives from the shell",
	Long: `dynmemctl drives the dynmem packing, concatenation and growth
primitives against a chosen allocator backend, printing the resulting layouts
and any allocation failures reported along the way.`,
	Version:            version,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: teardownLogging,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} {{.Version}}\n  commit: %s\n  built: %s\n", commit, date))

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&backend, "backend", string(alloc.BackendHeap), "Allocator backend (heap, mmap)")
	rootCmd.PersistentFlags().IntVar(&limit, "limit", 0, "Heap byte budget, 0 for unlimited")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Minimum log level")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write JSON logs to this file")
	rootCmd.PersistentFlags().
		BoolVar(&noColor, "no-color", os.Getenv("NO_COLOR") != "", "Disable colored output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	closeFn, err := logger.Init(logger.Options{Level: level, LogFile: logFile})
	if err != nil {
		return fmt.Errorf("failed to initialise logging: %w", err)
	}
	closeLog = closeFn
	return nil
}

func teardownLogging(cmd *cobra.Command, args []string) error {
	return closeLog()
}

// session is the allocator a command runs against, with every diagnostic it
// reports kept for the summary.
type session struct {
	c   *alloc.Checked
	col *diag.Collector
}

func newSession() (*session, error) {
	col := diag.NewCollector(diag.NewSlog(logger.L))
	c, err := alloc.Configure(alloc.Options{
		Backend:  alloc.Backend(backend),
		Limit:    limit,
		Reporter: col,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("allocator ready", "backend", backend, "limit", limit)
	return &session{c: c, col: col}, nil
}

// stats returns the backend's counters, when it keeps any.
func (s *session) stats() (alloc.Stats, bool) {
	st, ok := s.c.Allocator().(interface{ Stats() alloc.Stats })
	if !ok {
		return alloc.Stats{}, false
	}
	return st.Stats(), true
}

// printSummary reports allocator counters and failures in verbose mode.
func (s *session) printSummary() {
	if st, ok := s.stats(); ok {
		printVerbose("Allocator: %d malloc, %d realloc, %d free, %d bytes in use (peak %d)\n",
			st.Mallocs, st.Reallocs, st.Frees, st.InUse, st.Peak)
	}
	for _, d := range s.col.Diagnostics {
		printVerbose("%s\n", paint(errorStyle, "Diagnostic: "+d.String()))
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
