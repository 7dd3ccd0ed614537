package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nacpt/gasm/internal/ui"
)

func newBatchCommand() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Verify every .class file under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runBatch(args[0], cfg, quiet)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the progress bar")
	return cmd
}

func runBatch(root string, cfg *cliConfig, quiet bool) error {
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, ".class") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", root, err)
	}

	var bar *ui.ProgressBar
	if !quiet {
		bar = ui.NewProgressBar("Verifying", len(files))
	}

	var passed, failed int
	var failures []string
	for _, path := range files {
		if bar != nil {
			bar.Describe(path)
		}
		if err := checkOneFile(path, cfg); err != nil {
			failed++
			failures = append(failures, fmt.Sprintf("%s: %v", path, err))
		} else {
			passed++
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}

	fmt.Printf("\n%d checked, %d passed, %d failed\n", len(files), passed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d class files rejected", failed, len(files))
	}
	return nil
}
