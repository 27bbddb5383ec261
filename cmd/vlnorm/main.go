// Command vlnorm normalizes vowel formant data in delimited files.
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
