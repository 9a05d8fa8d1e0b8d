package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ambuda-org/vidyut-prakriya/prakriya"
)

// result is the CLI's JSON shape for one derivation outcome; Trace is
// Prakriya.VisibleHistory: the full rule history when --verbose is on,
// otherwise only the final-state entry (none if no rule fired). Text
// output prints the trace only with --verbose.
type result struct {
	Text  string                    `json:"text"`
	Trace []prakriya.HistoryEntry   `json:"trace,omitempty"`
}

func printResults(w io.Writer, ps []*prakriya.Prakriya) error {
	results := make([]result, len(ps))
	for i, p := range ps {
		results[i] = result{Text: p.Text(), Trace: p.VisibleHistory()}
	}

	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		fmt.Fprintln(w, r.Text)
		if verbose {
			for _, step := range r.Trace {
				fmt.Fprintf(w, "  %-20s -> %s\n", step.Rule, step.Text)
			}
		}
	}
	return nil
}
