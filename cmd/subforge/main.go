// Command subforge turns time-stamped transcripts into ASS subtitle
// descriptions and rendered overlay frames.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
