// Package main implements a two player reversi game in the terminal.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/lk16/reversi/internal/cli"
	"github.com/lk16/reversi/internal/config"
)

func main() {
	config.SetLogLevel()
	cfg := config.LoadCLIConfig()

	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		fmt.Printf("%s%s%s\n", cli.Red, err.Error(), cli.Reset)
		os.Exit(1)
	}
	defer rl.Close()

	session := cli.NewSession(cfg.TurnPolicy, rl.Stdout())
	registry := cli.NewRegistry(session)

	fmt.Fprintf(rl.Stdout(), "%sReversi%s (%s turn policy)\n", cli.Cyan, cli.Reset, cfg.TurnPolicy)
	fmt.Fprintf(rl.Stdout(), "Type 'help' for commands\n\n")
	fmt.Fprint(rl.Stdout(), cli.RenderGame(session.Controller, session.ShowHints))

	for {
		rl.SetPrompt(cli.Prompt(session.Controller))

		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		if err = registry.Execute(line); errors.Is(err, cli.ErrQuit) {
			break
		}
	}
}
