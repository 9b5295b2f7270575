// reversi is a terminal Reversi game for two players at one keyboard,
// optionally served to remote terminals over SSH.
//
// Usage:
//
//	reversi play             - Play a local hot-seat game
//	reversi serve            - Start SSH server for remote play
//	reversi history          - Show recorded match results
//
// Global flags:
//
//	--db <path>      - Set match database path (default: ~/.reversi/matches.db)
//	--config <path>  - Set theme/behavior config path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reversi",
	Short: "Reversi - Play Reversi in your terminal",
	Long: `Reversi is a terminal rendition of the classic disc-flipping board
game for two players sharing one keyboard.

Available commands:
  play     - Play a local hot-seat game
  serve    - Start SSH server for remote play
  history  - View recorded match results

Examples:
  reversi play
  reversi play --config ./my-theme.yaml
  reversi serve --ssh :2222
  reversi history`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.reversi/matches.db", "Path to match database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to theme/behavior config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}
