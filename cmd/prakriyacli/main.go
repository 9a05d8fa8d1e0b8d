// Command prakriyacli is a thin command-line front end over the
// vyakarana package, in the spirit of the teacher's cmd/smoketest: a
// small entry point that walks input, calls into the library packages,
// and prints a summary — restructured here onto cobra subcommands, one
// per derive_* entry point spec.md §2 asks a CLI to exercise.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
