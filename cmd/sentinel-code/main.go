// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

// Command sentinel-code analyzes GitHub repositories for security and
// quality issues, either as a one-shot CLI or as an HTTP service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "1.0.0"

func main() {
	// Optional; env vars win over .env values.
	godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "sentinel-code",
		Short: "AI-powered repository security and quality analyzer",
		Long:  "sentinel-code clones a GitHub repository, smart-samples its most security-relevant files, and asks an LLM for a detailed review.",
	}

	// Global flags.
	rootCmd.PersistentFlags().String("provider", "openrouter", "Reasoning backend (openrouter or bedrock)")
	rootCmd.PersistentFlags().String("model", "anthropic/claude-sonnet-4.5", "Model identifier")
	rootCmd.PersistentFlags().String("api-key", "", "OpenRouter API key")
	rootCmd.PersistentFlags().String("region", "", "AWS region for Bedrock")
	rootCmd.PersistentFlags().Int("max-files", 0, "Sampling budget (0 = default)")
	rootCmd.PersistentFlags().Int("max-lines", 0, "Per-file line cap (0 = default)")
	rootCmd.PersistentFlags().String("temp-dir", "", "Checkout parent directory")

	// Bind flags to viper.
	viper.BindPFlag("provider", rootCmd.PersistentFlags().Lookup("provider"))
	viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	viper.BindPFlag("api-key", rootCmd.PersistentFlags().Lookup("api-key"))
	viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	viper.BindPFlag("max-files", rootCmd.PersistentFlags().Lookup("max-files"))
	viper.BindPFlag("max-lines", rootCmd.PersistentFlags().Lookup("max-lines"))
	viper.BindPFlag("temp-dir", rootCmd.PersistentFlags().Lookup("temp-dir"))

	// Env vars: SENTINEL_MODEL, SENTINEL_API_KEY, etc. The original's
	// OPENROUTER_API_KEY is honored as a fallback.
	viper.SetEnvPrefix("SENTINEL")
	viper.AutomaticEnv()
	viper.BindEnv("api-key", "SENTINEL_API_KEY", "OPENROUTER_API_KEY")

	// Config file.
	viper.SetConfigName(".sentinel-code")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print sentinel-code version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sentinel-code %s\n", version)
		},
	}
}
