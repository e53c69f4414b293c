package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func init() {
	// fail safe: never expose debug routes because of a missing setting
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	rootCmd.AddCommand(serveCmd, snapshotCmd)
}

var rootCmd = &cobra.Command{
	Use:           "auction-sync",
	Short:         "Auction ledger view synchronization and action guard",
	Long:          "Keeps a consistent snapshot of an on-chain auction contract and guards every action against it before submission.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
