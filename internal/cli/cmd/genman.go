package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/matjam/slidepager"
	"github.com/matjam/slidepager/internal/cli/cmd/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewGenManCmd returns the command that writes the CLI reference, as man
// pages or markdown, for every command under rootCmd.
func NewGenManCmd(rootCmd *cobra.Command) *cobra.Command {
	var markdown bool
	c := &cobra.Command{
		Use:   "genman [output-dir]",
		Short: "Generate man pages (or markdown with --markdown) for the slidepager CLI",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "man"
			if markdown {
				dir = "docs"
			}
			if len(args) == 1 {
				dir = args[0]
			}

			written, err := GenerateDocs(rootCmd, utils.CanonicalPath(dir), markdown)
			if err != nil {
				return err
			}
			log.Infof("Wrote %d pages to %s", len(written), dir)
			return nil
		},
	}
	c.Flags().BoolVarP(&markdown, "markdown", "m", false, "write markdown instead of man pages")
	return c
}

// GenerateDocs writes one page per command into dir, creating it if needed,
// and returns the files written.
func GenerateDocs(rootCmd *cobra.Command, dir string, markdown bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating %s: %w", dir, err)
	}

	ext := ".1"
	if markdown {
		ext = ".md"
		if err := doc.GenMarkdownTree(rootCmd, dir); err != nil {
			return nil, fmt.Errorf("error writing markdown: %w", err)
		}
	} else {
		header := &doc.GenManHeader{
			Title:   strings.ToUpper(rootCmd.Name()),
			Section: "1",
			Source:  rootCmd.Name() + " " + strings.TrimSpace(slidepager.Version),
			Manual:  "Slidepager Manual",
		}
		if err := doc.GenManTree(rootCmd, header, dir); err != nil {
			return nil, fmt.Errorf("error writing man pages: %w", err)
		}
	}

	written, err := filepath.Glob(filepath.Join(dir, "*"+ext))
	if err != nil {
		return nil, err
	}
	return written, nil
}
