// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oraclesentinel/sentinel-code/pkg/sentinel"
	"github.com/oraclesentinel/sentinel-code/pkg/types"
)

// newAnalyzeCmd creates the "analyze" command.
func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a single repository",
		Long:  "Analyze clones the repository, samples its most relevant files, runs the LLM review, and prints the report as JSON.",
		RunE:  runAnalyze,
	}

	cmd.Flags().StringP("repo", "r", "", "GitHub repository URL (required)")
	cmd.MarkFlagRequired("repo")

	return cmd
}

// runAnalyze executes a one-shot analysis.
func runAnalyze(cmd *cobra.Command, args []string) error {
	repoURL, _ := cmd.Flags().GetString("repo")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	a, err := sentinel.New(ctx, configFromViper())
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	report, err := a.Analyze(ctx, repoURL)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	printReport(report)
	return nil
}

// configFromViper assembles the analyzer config from flags, env, and the
// optional config file.
func configFromViper() sentinel.Config {
	return sentinel.Config{
		Provider: sentinel.Provider(viper.GetString("provider")),
		Model:    viper.GetString("model"),
		APIKey:   viper.GetString("api-key"),
		Region:   viper.GetString("region"),
		MaxFiles: viper.GetInt("max-files"),
		MaxLines: viper.GetInt("max-lines"),
		TempDir:  viper.GetString("temp-dir"),
	}
}

// printReport outputs the report as JSON to stdout.
func printReport(report *types.Report) {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling report: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
