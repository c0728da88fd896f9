package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"studysnap/internal/logger"
	"studysnap/internal/summarizer"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [text-file]",
	Short: "Condense a text file into a short extractive summary",
	Long: `Summarize free text by frequency-based sentence ranking.

Sentences are scored by the aggregate corpus frequency of their words
(stopwords excluded) and the top-scoring sentences are returned verbatim,
in their original order. Use "-" to read from stdin.`,
	Example: `  # Three-sentence summary to stdout
  studysnap summarize notes.txt

  # Five sentences, written to a file
  studysnap summarize notes.txt -n 5 -o summary.txt

  # JSON output from stdin
  cat notes.txt | studysnap summarize - --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().IntP("sentences", "n", summarizer.DefaultMaxSentences, "Maximum number of sentences")
	summarizeCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	summarizeCmd.Flags().Bool("json", false, "Output as JSON")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("summarize")

	maxSentences, _ := cmd.Flags().GetInt("sentences")
	outputPath, _ := cmd.Flags().GetString("output")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	text, err := readTextArg(args[0])
	if err != nil {
		log.Error().Err(err).Str("file", args[0]).Msg("Failed to read input")
		return err
	}

	summary := summarizer.Summarize(text, maxSentences)

	log.Info().
		Int("max_sentences", maxSentences).
		Int("input_length", len(text)).
		Int("summary_length", len(summary)).
		Msg("Summary generated")

	var outputData []byte
	if jsonOutput {
		outputData, err = json.MarshalIndent(map[string]string{"summary": summary}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to create JSON output: %w", err)
		}
	} else {
		outputData = []byte(summary)
	}

	return writeOutput(outputData, outputPath, !jsonOutput, log)
}

// readTextArg reads the named file, or stdin when the argument is "-".
func readTextArg(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}
