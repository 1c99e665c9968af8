// vitrinectl drives the vitrine engine from the command line: registry
// inspection, trajectory generation, vocabulary extraction, prompt
// rendering, and a line-delimited JSON tool server over stdio.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
