// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vuelsbench/benchplot/benchtab"
	"github.com/vuelsbench/benchplot/internal/config"
	"github.com/vuelsbench/benchplot/internal/logging"
)

func newRootCmd() *cobra.Command {
	var (
		configFile string
		logLevel   string
		mergeOut   string
	)

	loadConfig := func() (*config.Config, error) {
		if configFile == "" {
			return config.Default(), nil
		}
		return config.LoadConfig(configFile)
	}

	renderRun := func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return render(cfg, cmd.OutOrStdout())
	}

	rootCmd := &cobra.Command{
		Use:           "benchplot",
		Short:         "Chart tab-separated benchmark results",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logLevel != "" {
				if err := logging.SetLogLevel(logLevel); err != nil {
					return fmt.Errorf("invalid log level: %w", err)
				}
			}
			loadEnvironment()
			return nil
		},
		RunE: renderRun,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to chart configuration file")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the configured charts",
		Args:  cobra.NoArgs,
		RunE:  renderRun,
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print per-series statistics of the configured inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return summarize(cfg, cmd.OutOrStdout())
		},
	}

	mergeCmd := &cobra.Command{
		Use:   "merge run.tsv...",
		Short: "Average repeated runs of a benchmark into one table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return merge(args, mergeOut, cmd.OutOrStdout())
		},
	}
	mergeCmd.Flags().StringVarP(&mergeOut, "output", "o", "", "Write the averaged table here instead of stdout")

	rootCmd.AddCommand(renderCmd, summaryCmd, mergeCmd)
	return rootCmd
}

func loadEnvironment() {
	logger := logging.GetLogger()
	const envFile = ".env"
	if _, err := os.Stat(envFile); err != nil {
		return
	}
	if err := godotenv.Load(envFile); err != nil {
		logger.WithField("file", envFile).WithError(err).Warn("Error loading .env file")
		return
	}
	logger.WithField("file", envFile).Debug("Loaded environment variables")
}

func merge(paths []string, out string, stdout io.Writer) error {
	logger := logging.GetLogger()
	runs := make([]*benchtab.Table, len(paths))
	for i, path := range paths {
		t, err := benchtab.ReadFile(path)
		if err != nil {
			return err
		}
		runs[i] = t
	}
	avg, err := benchtab.Mean(runs...)
	if err != nil {
		return err
	}
	if out == "" {
		return benchtab.Write(stdout, avg)
	}
	if err := benchtab.WriteFile(out, avg); err != nil {
		return err
	}
	logger.WithField("output", out).WithField("runs", len(runs)).Info("Saved averaged table")
	return nil
}
