// Command irdump is a boundary tool: it reads a binary IR module and
// prints its textual form, or with no argument prints a built-in
// example module for format sanity checks.
package main

import (
	"os"

	"github.com/cwbudde/shard/cmd/irdump/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
