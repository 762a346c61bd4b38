/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/elite-arena/apiserver/config"
	"github.com/elite-arena/apiserver/internal/server"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the Elite Arena API server",
	Long: `Starts the Elite Arena API server. Usage:

	arena server
`,
	Run: func(cmd *cobra.Command, args []string) {
		log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

		cfg, err := config.LoadConfig()
		if err != nil {
			log.Error("invalid configuration", "error", err)
			os.Exit(1)
		}

		srv, err := server.New(cmd.Context(), cfg, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start server: %v\n", err)
			os.Exit(1)
		}

		log.Info("server listening", "port", cfg.ServerPort, "env", cfg.Env)
		if err := srv.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
