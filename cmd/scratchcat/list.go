package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/scratchcat/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulty presets",
	Long:  `Shows each difficulty preset with the timings it plays with, after --config is applied.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %-14s  %-8s  %-6s  %s\n", "Preset", "Attack after", "Warning", "Points", "Multiplier")
	fmt.Printf("  %-8s  %-14s  %-8s  %-6s  %s\n", "------", "------------", "-------", "------", "----------")

	for _, p := range config.Presets() {
		cfg, err := config.Load(flagConfig, p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", p, err)
			os.Exit(1)
		}
		t := cfg.Timing
		fmt.Printf("  %-8s  %-14s  %-8s  %-6s  %gx\n",
			p,
			fmt.Sprintf("%v-%v", t.MinWait(), t.MaxWait()),
			t.WarningLead().String(),
			fmt.Sprintf("%d/%v", cfg.Scoring.PointsPerTick, t.ScoreInterval()),
			cfg.Scoring.WarningMultiplier,
		)
	}

	fmt.Println()
	fmt.Println("Run 'scratchcat play <preset>' to play.")
}
