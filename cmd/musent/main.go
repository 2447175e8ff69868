// Command musent computes entropy and complexity metrics for symbolic
// music: Shannon and Markov entropies, redundancy, predictability and
// Lempel-Ziv complexity, from MIDI, JSON or CSV input.
package main

import (
	"os"

	"github.com/katalvlaran/musent/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
