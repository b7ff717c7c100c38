// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdiddy/phantasm/internal/export"
	"github.com/pdiddy/phantasm/internal/store"
	"github.com/pdiddy/phantasm/internal/synthesis"
	"github.com/pdiddy/phantasm/pkg/types"
)

var cramCmd = &cobra.Command{
	Use:   "cram",
	Short: "Generate a last-minute exam survival plan",
	Long: `Cram generates a ruthless hour-by-hour survival plan for an imminent exam.
The archived Ghost Syllabus for the course is used as context when present.
Plans are kept in local history and can be pushed to the ledger with --save.`,
	RunE: runCram,
}

var cramHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List survival plans stored on the ledger and locally",
	RunE:  runCramHistory,
}

func runCram(cmd *cobra.Command, args []string) error {
	course, _ := cmd.Flags().GetString("course")
	examType, _ := cmd.Flags().GetString("exam")
	hours, _ := cmd.Flags().GetString("hours")
	save, _ := cmd.Flags().GetBool("save")
	exportDir, _ := cmd.Flags().GetString("export")

	if course == "" {
		return fmt.Errorf("--course is required")
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

	// Archived syllabus feeds the plan; a missing archive is fine, the
	// model is told to improvise.
	var contextText string
	archived, err := st.LatestSyllabus(course)
	switch {
	case err == nil:
		contextText = archived.Content
	case errors.Is(err, store.ErrNotFound):
		fmt.Fprintf(os.Stderr, "warning: no archived syllabus for %s, plan will be generic\n", course)
	default:
		return err
	}

	plan, err := backend.GenerateCramPlan(context.Background(), synthesis.CramRequest{
		CourseCode:     course,
		ExamType:       examType,
		HoursAvailable: hours,
		Context:        contextText,
	})
	if err != nil {
		return fmt.Errorf("triage failed: %w", err)
	}

	printPlan(plan)

	if _, err := st.SavePlan(course, plan); err != nil {
		fmt.Fprintf(os.Stderr, "warning: saving plan locally: %v\n", err)
	}

	if exportDir != "" {
		path, err := export.PlanYAML(exportDir, course, plan)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Plan exported to %s\n", path)
	}

	if save {
		lc := ledgerClient(cfg, st)
		if !lc.Enabled() {
			return fmt.Errorf("ledger not connected: set ledger.url and ledger.token")
		}
		if err := lc.SavePlan(context.Background(), course, plan); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Plan saved to ledger")
	}
	return nil
}

func runCramHistory(cmd *cobra.Command, args []string) error {
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

	lc := ledgerClient(cfg, st)
	ledgerPlans := lc.ListPlans(context.Background(), course, os.Stderr)
	localPlans, err := st.Plans(course)
	if err != nil {
		return err
	}

	if len(ledgerPlans)+len(localPlans) == 0 {
		fmt.Println("No survival plans on record.")
		return nil
	}

	if len(ledgerPlans) > 0 {
		fmt.Println("Ledger:")
		for _, plan := range ledgerPlans {
			printPlanSummary(plan)
		}
	}
	if len(localPlans) > 0 {
		fmt.Println("Local:")
		for _, plan := range localPlans {
			printPlanSummary(plan)
		}
	}
	return nil
}

var (
	priorityColor  = color.New(color.FgRed, color.Bold)
	timeblockColor = color.New(color.FgCyan)
)

func printPlan(plan types.CramPlan) {
	fmt.Printf("\n%s — %s\n", plan.ExamType, plan.TotalHours)
	fmt.Printf("Strategy: %s\n\n", plan.Strategy)

	for _, item := range plan.Schedule {
		timeblockColor.Printf("%s  ", item.Timeblock)
		priorityColor.Printf("[%s]\n", item.Priority)
		fmt.Printf("  %s\n", item.Action)
		if item.Notes != "" {
			fmt.Printf("  %s\n", item.Notes)
		}
		if item.VideoSuggestion != nil {
			fmt.Printf("  ▶ %s  %s\n", item.VideoSuggestion.Title, item.VideoSuggestion.URL)
		}
	}
}

func printPlanSummary(plan types.CramPlan) {
	created := ""
	if plan.CreatedTs > 0 {
		created = time.Unix(plan.CreatedTs, 0).Format("2006-01-02 15:04")
	}
	fmt.Printf("  #%d  %s (%s)  %d blocks  %s\n",
		plan.ID, plan.ExamType, plan.TotalHours, len(plan.Schedule), created)
}

func init() {
	cramCmd.Flags().String("course", "", "course code")
	cramCmd.Flags().String("exam", "Final", "exam type (e.g. Midterm, Final)")
	cramCmd.Flags().String("hours", "6 hours", "time available before the exam")
	cramCmd.Flags().Bool("save", false, "also save the plan to the ledger")
	cramCmd.Flags().String("export", "", "also export the plan as YAML to this directory")

	cramHistoryCmd.Flags().String("course", "", "course code")

	cramCmd.AddCommand(cramHistoryCmd)
	rootCmd.AddCommand(cramCmd)
}
