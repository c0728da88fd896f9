package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"studysnap/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "studysnap",
	Short: "StudySnap - turn notes and photos into summaries and flashcards",
	Long: `StudySnap extracts study material from images and free text.

It performs OCR on note photos, condenses text into a short extractive
summary, and synthesizes question/answer flashcards. The same operations
are available over HTTP (studysnap serve) and as offline subcommands.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("StudySnap executed")

		fmt.Println("Welcome to StudySnap!")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
