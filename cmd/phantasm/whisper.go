// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var whisperCmd = &cobra.Command{
	Use:   "whisper",
	Short: "Share and read course notes on the ledger",
	Long: `Whisper syncs short course notes ("whispers") with the configured
Memos-compatible ledger server. Whispers are tagged per course so every
student pointing at the same ledger sees them.

Use "whisper connect" to store the server URL and token locally.`,
}

var whisperListCmd = &cobra.Command{
	Use:   "list",
	Short: "List whispers for a course",
	RunE:  runWhisperList,
}

var whisperPostCmd = &cobra.Command{
	Use:   "post [text]",
	Short: "Post a whisper for a course",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWhisperPost,
}

var whisperConnectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Store the ledger server URL and token",
	RunE:  runWhisperConnect,
}

func runWhisperList(cmd *cobra.Command, args []string) error {
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
	if !lc.Enabled() {
		fmt.Println("Ledger not connected. Run \"phantasm whisper connect\" first.")
		return nil
	}

	whispers := lc.ListWhispers(context.Background(), course, os.Stderr)
	if len(whispers) == 0 {
		fmt.Println("The halls are silent. No whispers for this course.")
		return nil
	}
	for _, w := range whispers {
		when := time.Unix(w.CreatedTs, 0).Format("2006-01-02 15:04")
		fmt.Printf("  %s  %s\n", when, w.Content)
	}
	return nil
}

func runWhisperPost(cmd *cobra.Command, args []string) error {
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
	if err := lc.SaveWhisper(context.Background(), course, strings.Join(args, " ")); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "Whisper posted")
	return nil
}

func runWhisperConnect(cmd *cobra.Command, args []string) error {
	url, _ := cmd.Flags().GetString("url")
	token, _ := cmd.Flags().GetString("token")
	if url == "" || token == "" {
		return fmt.Errorf("--url and --token are required")
	}

	cfg := appConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SetSetting("ledger_url", url); err != nil {
		return err
	}
	if err := st.SetSetting("ledger_token", token); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "Ledger connection stored")
	return nil
}

func init() {
	whisperListCmd.Flags().String("course", "", "course code")
	whisperPostCmd.Flags().String("course", "", "course code")
	whisperConnectCmd.Flags().String("url", "", "ledger server URL (e.g. http://localhost:5230)")
	whisperConnectCmd.Flags().String("token", "", "ledger access token")

	whisperCmd.AddCommand(whisperListCmd, whisperPostCmd, whisperConnectCmd)
	rootCmd.AddCommand(whisperCmd)
}
