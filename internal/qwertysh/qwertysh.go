// Package qwertysh contains the core interactive loop and orchestration
// logic for the qwertysh project. It wires together configuration, the
// readline-based terminal, the built-in command table, and external
// program execution into a read-tokenize-dispatch-wait loop.
package qwertysh

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"Qwertysh/internal/builtin"
	"Qwertysh/internal/completer"
	"Qwertysh/internal/config"
	"Qwertysh/internal/launcher"
	"Qwertysh/internal/prompt"
	"Qwertysh/internal/tokenizer"
)

// Shell holds the runtime state of the interactive interpreter: the loaded
// configuration, the readline terminal instance, the built-in command
// table, and the tab completer rebuilt on each iteration.
type Shell struct {
	cfg       *config.Config       // loaded or default configuration
	terminal  *readline.Instance   // readline instance used to read user input
	builtins  *builtin.Table       // built-in command table
	completer *completer.Completer // tab completion over builtins and cwd
}

// Run starts the main interactive loop of the interpreter. It boots the
// shell, then repeatedly renders the prompt, reads a line from the
// terminal, splits it into tokens, and dispatches them to a built-in or an
// external program, waiting for the latter to finish. The function returns
// when EOF is received or the exit built-in signals stop; either way the
// process exits with a success status.
func Run() {

	shell, err := boot()
	if err != nil {
		panic(err)
	}

	defer shell.exit()

	if shell.cfg.Terminal.ClearOnStartup {
		fmt.Print(builtin.ClearScreen)
	}

	for {

		shell.completer.Update()
		shell.terminal.SetPrompt(prompt.Render(shell.cfg.Prompt))

		line, err := shell.terminal.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			} else if errors.Is(err, io.EOF) {
				return
			}
			panic(err)
		}

		if !shell.execute(tokenizer.Split(line)) {
			return
		}

	}

}

// boot initializes the interpreter runtime. It loads configuration
// (falling back to defaults on error), builds the built-in command table
// and completer, and creates a readline terminal instance. The initialized
// Shell is returned or an error if initialization fails.
func boot() (*Shell, error) {

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	builtins := builtin.NewTable()
	shellCompleter := completer.NewCompleter(builtins.Names())

	readlineCfg := &readline.Config{
		HistoryFile:     cfg.Terminal.HistoryFile,
		HistoryLimit:    cfg.Terminal.HistoryLimit,
		InterruptPrompt: cfg.Terminal.InterruptPrompt,
		EOFPrompt:       "\n" + cfg.Terminal.EOFPrompt,
		AutoComplete:    shellCompleter,
	}

	terminal, err := readline.NewEx(readlineCfg)
	if err != nil {
		return nil, fmt.Errorf("qwertysh: boot: failed to create new terminal instance: %v", err)
	}

	return &Shell{
		cfg:       cfg,
		terminal:  terminal,
		builtins:  builtins,
		completer: shellCompleter,
	}, nil

}

// exit performs cleanup of the interpreter runtime by closing the readline
// terminal.
func (shell *Shell) exit() {
	_ = shell.terminal.Close()
}

// execute dispatches one token list. An empty list is a no-op iteration.
// If the first token names a built-in, that built-in runs and its
// continuation signal is returned; otherwise the tokens are handed to the
// launcher, which spawns the external program, waits for it, and always
// signals continue.
func (shell *Shell) execute(tokens []string) bool {

	if len(tokens) == 0 {
		return true
	}

	if run, found := shell.builtins.Lookup(tokens[0]); found {
		return run(tokens, os.Stdout, os.Stderr)
	}

	return launcher.Launch(tokens, os.Stdin, os.Stdout, os.Stderr)

}
