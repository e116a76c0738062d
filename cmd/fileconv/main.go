package main

import "os"

// main is the entry point for the fileconv demonstration binary. Execute
// returns the process exit code so the exit decision stays testable.
func main() {
	os.Exit(Execute())
}
