// Command gasm is a thin demonstrator CLI: it wires a reader.ClassReader
// to the check.ClassChecker chain and reports whether a class file is
// well-formed. It does not disassemble, rewrite or re-emit class files;
// that is a class-file writer's job and out of scope here, in the same
// way termfx-morfx/cmd/morfx stays a thin driver over its own core
// transformation engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "gasm",
		Short: "gasm verifies JVM class files against the checker chain",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a gasm.yaml config file")
	root.AddCommand(newCheckCommand(), newBatchCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
