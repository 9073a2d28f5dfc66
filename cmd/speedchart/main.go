package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/midbel/speedchart/config"
	"github.com/midbel/speedchart/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	file    string
	logFile string
	debug   bool

	cfg     config.Config
	cleanup func() error
}

func (a *app) logger() *slog.Logger {
	return logger.L()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.file)
	if err != nil {
		return err
	}
	a.cfg = cfg

	cleanup, err := logger.Setup(logger.Config{
		File:   a.logFile,
		Writer: cmd.ErrOrStderr(),
		Debug:  a.debug,
	})
	if err != nil {
		return err
	}
	a.cleanup = cleanup
	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) error {
	if a.cleanup == nil {
		return nil
	}
	return a.cleanup()
}

func newRootCmd() *cobra.Command {
	var a app

	cmd := &cobra.Command{
		Use:                "speedchart",
		Short:              "Draw the top speeds of animals as a bar chart",
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	cmd.PersistentFlags().StringVarP(&a.file, "config", "c", "", "configuration file (yaml)")
	cmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "write logs to file instead of stderr")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		renderCmd(&a),
		serveCmd(&a),
		cleanCmd(&a),
		searchCmd(&a),
	)
	return cmd
}
