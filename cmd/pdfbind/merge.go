package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"go-pdfbind/internal/merge"
	"go-pdfbind/internal/prompt"
	"go-pdfbind/internal/source"
)

const defaultMergedName = "merged_output.pdf"

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge all PDF/CBZ files under a folder into one PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMerge(prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()), cmd.OutOrStdout())
	},
}

func runMerge(p *prompt.Prompter, out io.Writer) error {
	banner(out, "PDF/CBZ MERGER - HIGH QUALITY (NO QUALITY LOSS)")

	root, err := p.SourceDir()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nSearching for files...")
	sources, err := source.Discover(root)
	if err != nil {
		return err
	}
	var pdfs, cbzs int
	for _, s := range sources {
		if strings.EqualFold(filepath.Ext(s.Path()), ".cbz") {
			cbzs++
		} else {
			pdfs++
		}
	}
	fmt.Fprintf(out, "Found %d PDF file(s)\n", pdfs)
	fmt.Fprintf(out, "Found %d CBZ file(s)\n", cbzs)
	if len(sources) == 0 {
		return errors.New("no PDF or CBZ files found in the specified folder")
	}

	name, err := p.OutputName(defaultMergedName)
	if err != nil {
		return err
	}
	dir, err := p.OutputDir(root)
	if err != nil {
		return err
	}
	outputPath := filepath.Join(dir, name)

	divider(out)
	fmt.Fprintln(out, "Summary:")
	fmt.Fprintf(out, "  Input folder: %s\n", root)
	fmt.Fprintf(out, "  Total files to process: %d\n", len(sources))
	fmt.Fprintf(out, "  Output file: %s\n", outputPath)
	fmt.Fprintln(out, "  Quality preservation: ENABLED (no recompression)")
	divider(out)

	ok, err := p.Confirm()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "Operation cancelled by user.")
		return nil
	}

	assembler := &merge.Assembler{
		Logger: logger,
		Progress: func(i, total int, path string) {
			renderBar(out, "Merging", i, total, filepath.Base(path))
		},
	}
	res, err := assembler.Assemble(sources, outputPath)
	fmt.Fprintln(out)
	if err != nil {
		return err
	}

	for _, ar := range res.Archives {
		fmt.Fprintf(out, "Converted %s: found %d image(s)\n", filepath.Base(ar.Path), ar.Images)
	}
	for _, s := range res.Skipped {
		warnf(out, "WARNING: Could not merge %s: %v\n", s.Path, s.Reason)
	}

	banner(out, "Process completed successfully!")
	fmt.Fprintln(out, "Statistics:")
	fmt.Fprintf(out, "  - Total files merged: %d\n", len(res.Merged))
	fmt.Fprintf(out, "  - Total pages: %d\n", res.PageCount)
	if info, err := os.Stat(res.OutputPath); err == nil {
		fmt.Fprintf(out, "  - Output file size: %.2f MB\n", sizeMB(info.Size()))
	}
	fmt.Fprintf(out, "  - Output file saved at: %s\n", res.OutputPath)
	return nil
}
