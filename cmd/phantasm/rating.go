// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/phantasm/internal/syllabus"
)

var ratingCmd = &cobra.Command{
	Use:   "rating [professor]",
	Short: "Look up a professor's review scores",
	Long: `Rating searches public review data for the professor and prints a score card.
Scores are only shown when the lookup verifies real numbers; anything the
model cannot verify renders as a not-found card instead of invented values.`,
	Args: cobra.ExactArgs(1),
	RunE: runRating,
}

func runRating(cmd *cobra.Command, args []string) error {
	university, _ := cmd.Flags().GetString("university")

	cfg := appConfig()
	backend, err := aiBackend(cfg)
	if err != nil {
		return err
	}

	rating, err := backend.ProfessorRating(context.Background(), university, args[0])
	if err != nil {
		return fmt.Errorf("looking up rating: %w", err)
	}

	syllabus.PrintRating(os.Stdout, rating)
	return nil
}

func init() {
	ratingCmd.Flags().String("university", "", "university name, narrows the search")

	rootCmd.AddCommand(ratingCmd)
}
