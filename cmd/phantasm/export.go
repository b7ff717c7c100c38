// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/phantasm/internal/export"
	"github.com/pdiddy/phantasm/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the archived syllabus to a file",
	Long: `Export writes the archived Ghost Syllabus for a course to
GHOST_SYLLABUS_<course>.md, or to a standalone HTML page with --format html.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	course, _ := cmd.Flags().GetString("course")
	format, _ := cmd.Flags().GetString("format")
	outDir, _ := cmd.Flags().GetString("out")

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

	var path string
	switch format {
	case "md", "markdown":
		path, err = export.Markdown(outDir, archived)
	case "html":
		path, err = export.HTML(outDir, archived)
	default:
		return fmt.Errorf("unknown format %q: use md or html", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported to %s\n", path)
	return nil
}

func init() {
	exportCmd.Flags().String("course", "", "course code")
	exportCmd.Flags().String("format", "md", "output format: md or html")
	exportCmd.Flags().String("out", ".", "output directory")

	rootCmd.AddCommand(exportCmd)
}
