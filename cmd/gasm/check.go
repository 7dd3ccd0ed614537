package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nacpt/gasm/check"
	"github.com/nacpt/gasm/internal/logger"
	"github.com/nacpt/gasm/reader"
)

func newCheckCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "check <file.class>",
		Short: "Verify a single class file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger.SetDefault(logger.New(os.Stderr, logger.LevelDebug))
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return checkOneFile(args[0], cfg)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func checkOneFile(path string, cfg *cliConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	apiVersion, err := resolveApiVersion(cfg.ApiVersion)
	if err != nil {
		return err
	}

	cr, err := reader.NewClassReader(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	err = check.Run(func() {
		checker := check.NewClassChecker(nil, check.ClassCheckerOptions{
			ApiVersion:   apiVersion,
			Dataflow:     cfg.Dataflow,
			TypeResolver: identityResolver{},
		})
		parsingOptions := 0
		if cfg.SkipFrames {
			parsingOptions |= reader.SkipFrames
		}
		if cfg.SkipDebug {
			parsingOptions |= reader.SkipDebug
		}
		cr.Accept(checker, parsingOptions)
	})

	if err != nil {
		fmt.Printf("%s: REJECTED: %v\n", path, err)
		return err
	}
	logger.Debugf("%s: accepted", path)
	fmt.Printf("%s: OK\n", path)
	return nil
}
