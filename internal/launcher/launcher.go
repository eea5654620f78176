// Package launcher spawns external programs on behalf of the interpreter.
// It wraps os/exec to start a single child process with the tokenized
// command as its argument vector and blocks until the child reaches a
// terminal state before handing control back to the main loop.
package launcher

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Launch runs the external program named by command[0], resolved through
// the standard executable search path, with the remaining tokens as its
// arguments. The child's standard streams are wired to stdin, stdout, and
// errW, and Launch blocks until the child exits or is killed by a signal;
// stopped/suspended states are waited through.
//
// A failure to start the child (unknown program, permission denied, process
// creation failure) is reported to errW. A child that ran and failed is
// not reported; the interpreter does not surface child exit status. Launch
// always returns the continue signal.
func Launch(command []string, stdin io.Reader, stdout, errW io.Writer) bool {

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = errW

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(errW, "qwertysh: %v\n", err)
		}
	}

	return true

}
