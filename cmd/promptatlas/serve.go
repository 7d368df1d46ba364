package main

import (
	"context"

	"github.com/spf13/cobra"

	"promptatlas/internal/app"
	"promptatlas/internal/config"
	"promptatlas/internal/platform/shutdown"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dataset browser UI and JSON API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "config YAML file (default: built-in defaults + env)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Log.Sync()

	ctx, cancel := shutdown.NotifyContext(context.Background())
	defer cancel()

	return a.Run(ctx)
}
