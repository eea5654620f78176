// Package builtin implements the interpreter's built-in commands: cd, help,
// exit, and cls. Built-ins run inside the interpreter process instead of
// being launched as external programs, and each one returns a continuation
// signal telling the main loop whether to keep prompting.
package builtin

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ClearScreen is the VT100 erase-display sequence emitted by cls and by
// the interpreter at startup.
const ClearScreen = "\033[2J"

// Func is the signature shared by all built-ins. args is the full token
// list, args[0] being the command name itself. Output goes to out and
// diagnostics to errW. The returned bool is the continuation signal:
// true keeps the main loop prompting, false terminates it.
type Func func(args []string, out, errW io.Writer) bool

// Command pairs a built-in name with its implementation. Keeping name and
// function in one entry means the table cannot fall out of sync.
type Command struct {
	Name string
	Run  Func
}

// Table is the ordered list of built-in commands. Lookup order equals
// declaration order, and help enumerates names in the same order.
type Table struct {
	commands []Command
}

// NewTable returns the built-in table with the four commands registered.
func NewTable() *Table {

	table := new(Table)

	table.commands = []Command{
		{Name: "cd", Run: changeDirectory},
		{Name: "help", Run: table.help},
		{Name: "exit", Run: exit},
		{Name: "cls", Run: clear},
	}

	return table

}

// Lookup scans the table for an exact, case-sensitive match against name
// and returns the matching built-in. The first match in declaration order
// wins. The second return value reports whether a match was found.
func (t *Table) Lookup(name string) (Func, bool) {
	for _, command := range t.commands {
		if command.Name == name {
			return command.Run, true
		}
	}
	return nil, false
}

// Names returns the built-in command names in declaration order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.commands))
	for _, command := range t.commands {
		names = append(names, command.Name)
	}
	return names
}

// changeDirectory implements cd. It requires a directory argument and
// changes the interpreter's working directory to it. A missing argument or
// a failed chdir is reported to errW; neither terminates the loop.
func changeDirectory(args []string, _, errW io.Writer) bool {

	if len(args) < 2 {
		fmt.Fprintln(errW, "qwertysh: expected argument to \"cd\"")
		return true
	}

	if err := os.Chdir(args[1]); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(errW, "qwertysh: cd: %s: no such file or directory\n", args[1])
		} else {
			fmt.Fprintf(errW, "qwertysh: cd: %v\n", err)
		}
	}

	return true

}

// help implements help. It prints a usage banner followed by the names of
// all built-ins, in table order, and always continues.
func (t *Table) help(_ []string, out, _ io.Writer) bool {

	fmt.Fprintln(out, "qwertysh")
	fmt.Fprintln(out, "Type program names and arguments, and hit enter.")
	fmt.Fprintln(out, "The following are built in:")

	for _, name := range t.Names() {
		fmt.Fprintf(out, "  %s\n", name)
	}

	fmt.Fprintln(out, "Use the man command for information on other programs.")

	return true

}

// exit implements exit. Arguments are ignored; it returns the stop signal,
// the only way the main loop terminates normally.
func exit(_ []string, _, _ io.Writer) bool {
	return false
}

// clear implements cls by emitting the terminal clear-screen sequence.
func clear(_ []string, out, _ io.Writer) bool {
	fmt.Fprint(out, ClearScreen)
	return true
}
