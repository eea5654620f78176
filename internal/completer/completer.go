// Package completer provides tab completion for the interpreter. It
// dynamically builds completion suggestions from the built-in command names
// and the contents of the current working directory, so "cd" completes to
// directories and external program invocations complete to local files.
package completer

import (
	"os"

	"github.com/chzyer/readline"
)

// Completer adapts the interpreter's dynamic environment (the working
// directory contents) to the readline.AutoCompleter interface. Suggestions
// are rebuilt on each loop iteration so they track cd.
type Completer struct {
	builtins          []string
	readlineCompleter *readline.PrefixCompleter
}

// NewCompleter returns a new Completer suggesting the given built-in
// command names at the start of the line.
func NewCompleter(builtins []string) *Completer {
	return &Completer{
		builtins:          builtins,
		readlineCompleter: readline.NewPrefixCompleter(),
	}
}

// Update rebuilds the completion tree based on the current working
// directory. Directories are offered as arguments to cd; all entries are
// offered as candidate first tokens alongside the built-in names.
func (c *Completer) Update() {

	entries, err := os.ReadDir(".")
	if err != nil {
		return
	}

	var onlyDirs []readline.PrefixCompleterInterface
	var localEntries []readline.PrefixCompleterInterface

	for _, entry := range entries {
		if entry.IsDir() {
			onlyDirs = append(onlyDirs, readline.PcItem(entry.Name()+"/"))
			localEntries = append(localEntries, readline.PcItem(entry.Name()+"/"))
		} else {
			localEntries = append(localEntries, readline.PcItem(entry.Name()))
		}
	}

	var items []readline.PrefixCompleterInterface

	for _, name := range c.builtins {
		if name == "cd" {
			items = append(items, readline.PcItem(name, onlyDirs...))
		} else {
			items = append(items, readline.PcItem(name))
		}
	}

	items = append(items, localEntries...)

	c.readlineCompleter = readline.NewPrefixCompleter(items...)

}

// Do delegates the completion logic to the underlying PrefixCompleter.
// It satisfies the readline.AutoCompleter interface.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	return c.readlineCompleter.Do(line, pos)
}
