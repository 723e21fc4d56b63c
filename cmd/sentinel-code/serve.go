// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oraclesentinel/sentinel-code/internal/server"
	"github.com/oraclesentinel/sentinel-code/pkg/sentinel"
)

const shutdownGrace = 10 * time.Second

// newServeCmd creates the "serve" command.
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis API server",
		RunE:  runServe,
	}

	cmd.Flags().Int("port", 8100, "Listen port")
	viper.BindPFlag("port", cmd.Flags().Lookup("port"))

	return cmd
}

// runServe starts the HTTP server and blocks until interrupted.
func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	a, err := sentinel.New(ctx, configFromViper())
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	addr := fmt.Sprintf(":%d", viper.GetInt("port"))
	srv := server.New(addr, server.NewMux(server.NewHandler(a)))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer shutdownCancel()

	return srv.Shutdown(shutdownCtx)
}
