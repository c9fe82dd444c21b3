//go:build !unix && !windows

package main

import "os"

func terminalSize() (width, height int) {
	return 80, 24
}

func isTerminal(*os.File) bool {
	return false
}
