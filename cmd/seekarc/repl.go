package main

import (
	"io"
	"log"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

func replCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Drive a control from a prompt",
		Long: `Drive a control from a prompt. Pointer commands take coordinates relative
to the center of a square view; type help for a list of commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl(size)
		},
	}
	cmd.Flags().IntVar(&size, "size", 200, "view width and height in pixels")
	return cmd
}

func completer() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, name := range commandNames() {
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}

func repl(size int) error {
	tmp, err := os.CreateTemp("", "seekarc")
	if err != nil {
		return err
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "seekarc: ",
		HistoryFile:       tmp.Name(),
		AutoComplete:      completer(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	log.SetFlags(0)
	log.SetOutput(rl.Stderr())

	sess, err := newSession(cfg, size, rl.Stdout())
	if err != nil {
		return err
	}
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		}
		if err := sess.exec(line); err != nil {
			log.Printf("%v\n", err)
		}
	}
}
