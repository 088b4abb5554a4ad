// word-analyzer serves dictionary lookups, autocomplete and affix analysis
// over a static JSON dataset.
package main

import (
	"os"

	"github.com/dongchun97/trans-test/cmd/word-analyzer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
