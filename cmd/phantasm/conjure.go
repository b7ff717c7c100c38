// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/phantasm/internal/session"
	"github.com/pdiddy/phantasm/internal/syllabus"
	"github.com/pdiddy/phantasm/internal/synthesis"
	"github.com/pdiddy/phantasm/pkg/types"
)

var conjureCmd = &cobra.Command{
	Use:   "conjure",
	Short: "Generate the Ghost Syllabus for a course",
	Long: `Conjure fetches student discussion about the course, looks up the professor's
review scores when a professor is given, and synthesizes the Ghost Syllabus.
The result is rendered to the terminal and archived locally so cram, radio,
check, and export can reuse it.

When live discussion sources are unreachable the engine degrades to a clearly
marked simulation mode instead of failing.

Attach the official syllabus (PDF or image) with --syllabus to get a
"Syllabus vs Reality" comparison section.`,
	RunE: runConjure,
}

func runConjure(cmd *cobra.Command, args []string) error {
	university, _ := cmd.Flags().GetString("university")
	course, _ := cmd.Flags().GetString("course")
	professor, _ := cmd.Flags().GetString("professor")
	attachPath, _ := cmd.Flags().GetString("syllabus")

	if course == "" {
		return fmt.Errorf("--course is required")
	}

	var attachment *synthesis.Attachment
	if attachPath != "" {
		var err error
		attachment, err = synthesis.LoadAttachment(attachPath)
		if err != nil {
			return err
		}
	}

	cfg := appConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	backend, err := aiBackend(cfg)
	if err != nil {
		return err
	}

	gen := session.NewGenerator(httpClient(cfg), cfg.Discussion, backend, st)
	result, err := gen.Generate(context.Background(), session.GenerateRequest{
		University: university,
		CourseCode: course,
		Professor:  professor,
		Attachment: attachment,
	}, os.Stderr)
	if err != nil {
		return err
	}

	if result.Discussion.Provenance == types.ProvenanceMock {
		syllabus.PrintMockBanner(os.Stdout)
	}
	if result.Rating.Requested {
		if result.Rating.Err != nil {
			fmt.Fprintf(os.Stderr, "warning: professor rating unavailable: %v\n", result.Rating.Err)
		} else {
			syllabus.PrintRating(os.Stdout, result.Rating.Rating)
		}
	}

	checks, err := st.Checklist(course)
	if err != nil {
		return err
	}
	syllabus.PrintDocument(os.Stdout, result.Syllabus, checks)

	fmt.Fprintf(os.Stderr, "\nArchived syllabus for %s (%s data)\n",
		course, result.Discussion.Provenance)
	return nil
}

func init() {
	conjureCmd.Flags().String("university", "", "university name")
	conjureCmd.Flags().String("course", "", "course code (e.g. \"CS 101\")")
	conjureCmd.Flags().String("professor", "", "professor name, enables the rating lookup")
	conjureCmd.Flags().String("syllabus", "", "path to the official syllabus (PDF or image)")

	rootCmd.AddCommand(conjureCmd)
}
