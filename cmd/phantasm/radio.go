// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/phantasm/internal/radio"
	"github.com/pdiddy/phantasm/internal/store"
)

var radioCmd = &cobra.Command{
	Use:   "radio",
	Short: "Generate an audio news-flash briefing of the Ghost Syllabus",
	Long: `Radio turns the archived Ghost Syllabus for a course into a short dramatic
audio briefing, written as a WAV file. With --play the configured player
command is started on the result.`,
	RunE: runRadio,
}

func runRadio(cmd *cobra.Command, args []string) error {
	course, _ := cmd.Flags().GetString("course")
	play, _ := cmd.Flags().GetBool("play")

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

	backend, err := aiBackend(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "Tuning the airwaves...")
	payload, err := backend.GenerateBriefing(context.Background(), archived.Content)
	if err != nil {
		return fmt.Errorf("generating briefing: %w", err)
	}

	pcm, err := radio.Decode(payload)
	if err != nil {
		return err
	}

	outDir := cfg.Radio.OutputDir
	if outDir == "" {
		outDir = filepath.Join("data", "audio")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(outDir, fmt.Sprintf("briefing_%s.wav", store.CourseKey(course)))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating WAV file: %w", err)
	}
	if err := radio.WriteWAV(f, pcm, cfg.Radio.SampleRate); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("Briefing written to %s\n", path)

	if play {
		player := radio.NewPlayer(cfg.Radio.PlayerCommand)
		if err := player.Play(path); err != nil {
			return err
		}
		return player.Wait()
	}
	return nil
}

func init() {
	radioCmd.Flags().String("course", "", "course code")
	radioCmd.Flags().Bool("play", false, "play the briefing with the configured player command")

	rootCmd.AddCommand(radioCmd)
}
