// Raw-terminal control around sh2dbg's REPL. sh2dbg enters raw mode at
// start-up; debugREPL restores cooked mode while it reads command lines
// and re-enters raw mode when it returns. Grounded on golc3/cmd/golc3/term.go's
// enterRawTerm/exitRawTerm pair, but built on golang.org/x/term's
// higher-level MakeRaw/Restore instead of hand-rolled unix.Termios
// flag twiddling, matching IntuitionAmiga-IntuitionEngine's choice of
// x/term as its terminal dependency.
package main

import (
	"os"

	"golang.org/x/term"
)

var termState *term.State

func enterRawTerm() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return
	}
	termState = state
}

func exitRawTerm() {
	if termState == nil {
		return
	}
	term.Restore(int(os.Stdin.Fd()), termState)
	termState = nil
}
