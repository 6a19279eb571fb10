// scratchcat is a press-and-hold game for the terminal: keep scratching the
// cat to earn points, and let go before it attacks.
//
// Usage:
//
//	scratchcat play [difficulty]   - Play straight away
//	scratchcat menu                - Pick a difficulty interactively
//	scratchcat serve               - Start SSH server for remote play
//	scratchcat scores [difficulty] - Show high scores
//	scratchcat list                - List difficulty presets
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible attack timing
//	--db <path>           - Set database path (default: ~/.scratchcat/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal or hard
//	--art-dir <path>      - Directory with replacement cat art
//	--log <path>          - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
//
// Defaults can be set with SCRATCHCAT_DB, SCRATCHCAT_FPS, SCRATCHCAT_DIFFICULTY,
// SCRATCHCAT_ART_DIR, SCRATCHCAT_LOG_LEVEL and SCRATCHCAT_SSH_ADDR.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/scratchcat/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagArtDir     string
	flagLogFile    string
	flagLogLevel   string
)

// envDefaults seeds flag defaults from the environment.
var envDefaults = loadEnvDefaults()

func loadEnvDefaults() config.Env {
	e, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return config.Env{
			DBPath:     "~/.scratchcat/scores.db",
			FPS:        60,
			Difficulty: string(config.DifficultyNormal),
			LogLevel:   "info",
			SSHAddr:    ":23234",
		}
	}
	return e
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scratchcat",
	Short: "Scratch the Cat - a press-and-hold game for your terminal",
	Long: `Scratch the Cat: hold the mouse button on the cat to earn points.
Let go before it attacks. Letting go while it warns you doubles the points,
but holding on through the attack ends the run.

Available commands:
  play     - Play straight away
  menu     - Pick a difficulty interactively
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show difficulty presets

Examples:
  scratchcat play
  scratchcat play hard
  scratchcat menu
  scratchcat serve --ssh :2222
  scratchcat scores easy`,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", envDefaults.FPS, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", envDefaults.DBPath, "Path to scores database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", envDefaults.Difficulty, "Difficulty preset: easy, normal, hard")
	flags.StringVar(&flagArtDir, "art-dir", envDefaults.ArtDir, "Directory with replacement cat art")
	flags.StringVar(&flagLogFile, "log", "", "Write logs to this file")
	flags.StringVar(&flagLogLevel, "log-level", envDefaults.LogLevel, "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
