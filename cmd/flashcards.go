package cmd

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"studysnap/internal/flashcard"
	"studysnap/internal/logger"
)

var flashcardsCmd = &cobra.Command{
	Use:   "flashcards [text-file]",
	Short: "Generate question/answer flashcards from a text file",
	Long: `Generate flashcards by applying pattern rules to each sentence.

Definitional sentences ("X is Y") become "What is X?" cards, possession
sentences ("X has Y") become "What does X have?" cards, and everything else
falls back to a prompt quoting the sentence. Use "-" to read from stdin.`,
	Example: `  # Cards as readable text
  studysnap flashcards notes.txt

  # At most five cards, as JSON
  studysnap flashcards notes.txt --max 5 --json

  # CSV export for spaced-repetition apps
  studysnap flashcards notes.txt --csv -o cards.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runFlashcards,
}

func init() {
	rootCmd.AddCommand(flashcardsCmd)

	flashcardsCmd.Flags().Int("max", flashcard.DefaultMaxCards, "Maximum number of cards")
	flashcardsCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	flashcardsCmd.Flags().Bool("json", false, "Output as JSON")
	flashcardsCmd.Flags().Bool("csv", false, "Output as CSV (question,answer)")
}

func runFlashcards(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("flashcards")

	maxCards, _ := cmd.Flags().GetInt("max")
	outputPath, _ := cmd.Flags().GetString("output")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	csvOutput, _ := cmd.Flags().GetBool("csv")

	if jsonOutput && csvOutput {
		return fmt.Errorf("--json and --csv are mutually exclusive")
	}

	text, err := readTextArg(args[0])
	if err != nil {
		log.Error().Err(err).Str("file", args[0]).Msg("Failed to read input")
		return err
	}

	cards := flashcard.Generate(text, maxCards)

	log.Info().
		Int("max_cards", maxCards).
		Int("input_length", len(text)).
		Int("cards", len(cards)).
		Msg("Flashcards generated")

	var outputData []byte
	switch {
	case jsonOutput:
		outputData, err = json.MarshalIndent(cards, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to create JSON output: %w", err)
		}
	case csvOutput:
		outputData, err = cardsToCSV(cards)
		if err != nil {
			return fmt.Errorf("failed to create CSV output: %w", err)
		}
	default:
		outputData = []byte(cardsToText(cards))
	}

	return writeOutput(outputData, outputPath, !jsonOutput && !csvOutput, log)
}

func cardsToCSV(cards []flashcard.Card) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Question", "Answer"}); err != nil {
		return nil, err
	}
	for _, c := range cards {
		if err := w.Write([]string{c.Question, c.Answer}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cardsToText(cards []flashcard.Card) string {
	var sb strings.Builder
	for i, c := range cards {
		fmt.Fprintf(&sb, "%d. %s\n   A: %s\n", i+1, c.Question, c.Answer)
	}
	return strings.TrimRight(sb.String(), "\n")
}
