// Command gloss glosses New Ithkuil words and sentences from the command
// line.
//
//	gloss word hlamröé-uçtļořï
//	gloss sentence --precision full "..."
//	gloss repl --watch
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
