package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stacker/internal/registry"
	"github.com/vovakirdan/tui-stacker/internal/storage"
)

const topScores = 10

var (
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 runs for the specified mode (classic by default),
with the best score and the number of wins.

Examples:
  stacker scores
  stacker scores stacker_endless
  stacker scores --all
  stacker scores stacker_endless --clear`,
	Args: cobra.RangeArgs(0, 1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded run instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := modeArg(args)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	if flagScoresClear {
		err = clearScores(os.Stdout, store, gameID, game.Title())
	} else {
		err = printScores(os.Stdout, store, gameID, game.Title(), flagScoresAll)
	}
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// clearScores deletes the runs of one mode and reports it.
func clearScores(w io.Writer, store *storage.Store, gameID, title string) error {
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared all runs for %s.\n", title)
	return nil
}

// printScores writes the score table of one mode followed by its stats.
func printScores(w io.Writer, store *storage.Store, gameID, title string, all bool) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, topScores)
	}
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n", title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'stacker play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		result := ""
		if entry.Won {
			result = "WIN"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-8d  %-6s  %s\n", i+1, entry.Score, result, dateStr)
	}

	fmt.Fprintln(w)
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintf(w, "Best: %d  Wins: %d  Runs: %d\n", stats.HighScore, stats.Wins, stats.GamesCount)
	}
	return nil
}
