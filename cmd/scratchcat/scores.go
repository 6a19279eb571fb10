package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/scratchcat/internal/config"
	"github.com/vovakirdan/scratchcat/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top 10 runs on a difficulty board.

Examples:
  scratchcat scores
  scratchcat scores hard
  scratchcat scores --all
  scratchcat scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Summarize every board")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every run on the board")
}

func runScores(_ *cobra.Command, args []string) {
	name := flagDifficulty
	if len(args) == 1 {
		name = args[0]
	}
	preset := mustPreset(name)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresAll:
		err = printAllBoards(store)
	case flagScoresClear:
		err = store.ClearScores(preset.Board())
		if err == nil {
			fmt.Printf("Cleared the %s board.\n", preset.Title())
		}
	default:
		err = printBoard(store, preset)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printBoard(store *storage.Store, preset config.DifficultyPreset) error {
	scores, err := store.TopScores(preset.Board(), 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - Scratch the Cat (%s)\n", preset.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'scratchcat play %s' to set the first high score!\n", preset)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-3s  %-5s  %s\n", "Rank", "Score", "Holds", "2X", "Best", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-3s  %-5s  %s\n", "----", "-----", "-----", "--", "----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-5d  %-3d  %-5d  %s\n",
			i+1, e.Score, e.Holds, e.Cashouts, e.BestGain, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.BoardStats(preset.Board())
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	return nil
}

func printAllBoards(store *storage.Store) error {
	all, err := store.AllBoardStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-8s  %-5s  %-6s  %-8s  %-10s  %s\n", "Board", "Runs", "Best", "Average", "2X cashes", "Last played")
	fmt.Printf("  %-8s  %-5s  %-6s  %-8s  %-10s  %s\n", "-----", "----", "----", "-------", "---------", "-----------")
	for _, p := range config.Presets() {
		s, ok := all[p.Board()]
		if !ok {
			fmt.Printf("  %-8s  %-5d  %-6s  %-8s  %-10s  %s\n", p.Title(), 0, "-", "-", "-", "never")
			continue
		}
		fmt.Printf("  %-8s  %-5d  %-6d  %-8.1f  %-10d  %s\n",
			p.Title(), s.Runs, s.HighScore, s.AvgScore, s.Cashouts, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
