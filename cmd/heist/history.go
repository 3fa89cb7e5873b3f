package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-heist/internal/platform/tui"
	"github.com/vovakirdan/maze-heist/internal/storage"
)

var (
	flagPlain   bool
	flagFastest bool
	flagLimit   int
	flagClear   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded runs",
	Long: `Show the run history: every escape, capture and abandoned run.

By default an interactive table opens; --plain prints to stdout instead.

Examples:
  heist history
  heist history --plain --fastest --limit 5
  heist history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print runs instead of opening the table view")
	historyCmd.Flags().BoolVar(&flagFastest, "fastest", false, "List the fastest escapes (with --plain)")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print (with --plain)")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole history")
}

func runHistory(_ *cobra.Command, _ []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: run history is disabled (--db is empty)")
		os.Exit(1)
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
	case flagPlain:
		if err := printHistory(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printHistory(store *storage.Store) error {
	var runs []storage.Run
	var err error
	title := "Recent runs"
	if flagFastest {
		title = "Fastest escapes"
		runs, err = store.FastestEscapes(flagLimit)
	} else {
		runs, err = store.RecentRuns(flagLimit)
	}
	if err != nil {
		return err
	}
	sum, err := store.Summarize()
	if err != nil {
		return err
	}

	fmt.Println(title)
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'heist play' to start your first heist!")
		return nil
	}

	fmt.Printf("  %-4s  %-9s  %-8s  %-4s  %-5s  %-16s  %s\n", "#", "Outcome", "Time", "Loot", "Quiz", "Date", "Session")
	fmt.Printf("  %-4s  %-9s  %-8s  %-4s  %-5s  %-16s  %s\n", "--", "-------", "----", "----", "----", "----", "-------")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-9s  %-8s  %-4d  %d/%-3d  %-16s  %s\n",
			i+1, r.Outcome, tui.FormatDuration(r.Duration), r.Collected,
			r.QuizCorrect, r.QuizCorrect+r.QuizWrong,
			r.CreatedAt.Format("2006-01-02 15:04"), r.Session)
	}

	fmt.Println()
	fmt.Printf("%d runs, %d escapes, %d caught", sum.Runs, sum.Escapes, sum.Caught)
	if sum.BestTime > 0 {
		fmt.Printf(", best escape %s", tui.FormatDuration(sum.BestTime))
	}
	fmt.Println()
	return nil
}
