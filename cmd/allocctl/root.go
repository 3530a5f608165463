package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose  bool
	jsonOut  bool
	heapSize int
)

var rootCmd = &cobra.Command{
	Use:   "allocctl",
	Short: "Drive the skip-list allocator against a host-backed arena",
	Long: `allocctl backs the skip-list allocator with an anonymous mmap
arena standing in for the linker-provided SRAM region an embedded target
would hand it, and exercises malloc/realloc/free against it.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().IntVar(&heapSize, "heap", 128*1024, "Arena size in bytes")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printInfo(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func cmdOut() *os.File { return os.Stdout }
