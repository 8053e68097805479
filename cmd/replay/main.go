package main

import (
	"flag"
	"fmt"
	"os"

	"watchloop/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to session fixture JSON")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/session.json")
		os.Exit(2)
	}

	f, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		os.Exit(2)
	}

	result := replay.Run(f)
	divergences := replay.Check(f, result)

	os.Exit(printComparison(f, result, divergences))
}

// #endregion main

// #region output

// printComparison outputs the replayed session, the divergence table, and
// returns the exit code (0 = match, 1 = diverged).
func printComparison(f *replay.Fixture, r replay.Result, divs []replay.Divergence) int {
	if f.Description != "" {
		fmt.Printf("session: %s\n\n", f.Description)
	}

	fmt.Printf("%-10s| %-10s| %-14s| %-12s| %s\n",
		"Watch", "Qualified", "AvgAttention", "SessionMin", "Break")
	fmt.Printf("%-10s+%-11s+%-15s+%-13s+%s\n",
		"----------", "-----------", "---------------", "-------------", "------")
	for _, step := range r.Steps {
		fmt.Printf("%-10d| %-10v| %-14.3f| %-12.2f| %v\n",
			step.WatchedAt, step.Qualified, step.AvgAttention, step.SessionMinutes, step.ShouldBreak)
	}

	fmt.Printf("\nquery: %v\n", r.Query)
	fmt.Printf("break: %v (%.1f min)\n", r.ShouldBreak, r.BreakMinutes)

	if len(divs) == 0 {
		fmt.Println("\nSummary: all expectations match")
		return 0
	}

	fmt.Printf("\n%-18s| %-15s| %s\n", "Field", "Expected", "Got")
	fmt.Printf("%-18s+%-16s+%s\n", "------------------", "----------------", "----------------")
	for _, d := range divs {
		fmt.Printf("%-18s| %-15s| %s\n", d.Field, d.Want, d.Got)
	}
	fmt.Printf("\nSummary: %d divergence(s)\n", len(divs))
	return 1
}

// #endregion output
