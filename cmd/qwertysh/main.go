// Package main is the entry point of the qwertysh application.
// It simply calls qwertysh.Run() to start the interactive interpreter.
package main

import "Qwertysh/internal/qwertysh"

// main starts the qwertysh interactive interpreter.
func main() {
	qwertysh.Run()
}
