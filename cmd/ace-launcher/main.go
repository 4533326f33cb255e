// Command ace-launcher browses AceStream channel lists and opens channels in an
// external player through the local AceStream engine.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
