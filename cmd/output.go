package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// writeOutput writes command results to the given file, or stdout when no
// path is set.
func writeOutput(data []byte, outputPath string, addNewline bool, log zerolog.Logger) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			log.Error().
				Err(err).
				Str("output_file", outputPath).
				Msg("Failed to write output file")
			return fmt.Errorf("failed to write output file: %w", err)
		}

		log.Info().
			Str("output_file", outputPath).
			Int("bytes", len(data)).
			Msg("Results written to file")
		return nil
	}

	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if addNewline {
		fmt.Println()
	}
	return nil
}
