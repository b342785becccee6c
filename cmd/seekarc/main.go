// Command seekarc drives a circular seek control from a prompt, renders it to
// PNG or shows it in a window.
//
// Attributes come from defaults, the YAML file named by --config and SEEKARC_
// environment variables, which may also be set in a .env file.
package main

import (
	"context"
	"log/slog"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"dasa.cc/seekarc/config"
	"dasa.cc/seekarc/seek"
)

var (
	flagConfig string
	flagDebug  bool

	cfg config.Config
)

func setup(cmd *cobra.Command, args []string) error {
	if flagDebug {
		h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
		seek.SetLogger(slog.New(h))
	}
	var err error
	cfg, err = config.Load(flagConfig)
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "seekarc",
		Short:             "Circular seek control",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML file of control attributes")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log control events to stderr")

	root.AddCommand(replCmd(), renderCmd(), viewCmd())
	return root
}

func main() {
	_ = godotenv.Load()

	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
