// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/phantasm/internal/store"
	"github.com/pdiddy/phantasm/internal/syllabus"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Track checklist progress over the archived syllabus",
	Long: `Check renders the archived Ghost Syllabus with togglable checklist rows and
persists their state per course. An item is identified by its literal text:
identical bullets share state, and a reworded bullet starts unchecked.`,
}

var checkListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the syllabus checklist with its saved state",
	RunE:  runCheckList,
}

var checkToggleCmd = &cobra.Command{
	Use:   "toggle [item text]",
	Short: "Toggle a checklist item by its text",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheckToggle,
}

func runCheckList(cmd *cobra.Command, args []string) error {
	course, _ := cmd.Flags().GetString("course")
	if course == "" {
		return fmt.Errorf("--course is required")
	}

	cfg := appConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	archived, err := st.LatestSyllabus(course)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no archived syllabus for %s: run conjure first", course)
	}
	if err != nil {
		return err
	}

	checks, err := st.Checklist(course)
	if err != nil {
		return err
	}

	syllabus.PrintDocument(os.Stdout, archived.Content, syllabus.Checklist(checks))
	return nil
}

func runCheckToggle(cmd *cobra.Command, args []string) error {
	course, _ := cmd.Flags().GetString("course")
	if course == "" {
		return fmt.Errorf("--course is required")
	}
	text := strings.TrimSpace(strings.Join(args, " "))

	cfg := appConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	checked, err := st.Checklist(course)
	if err != nil {
		return err
	}

	checks := syllabus.Checklist(checked)
	checks.Toggle(text)
	if err := st.SaveChecklist(course, checks); err != nil {
		return err
	}

	state := "[ ]"
	if checks.Checked(text) {
		state = "[x]"
	}
	fmt.Printf("%s %s\n", state, text)
	return nil
}

func init() {
	checkListCmd.Flags().String("course", "", "course code")
	checkToggleCmd.Flags().String("course", "", "course code")

	checkCmd.AddCommand(checkListCmd, checkToggleCmd)
	rootCmd.AddCommand(checkCmd)
}
