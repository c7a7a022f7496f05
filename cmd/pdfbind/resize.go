package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"go-pdfbind/internal/fit"
	"go-pdfbind/internal/prompt"
	"go-pdfbind/internal/resize"
)

const defaultResizedName = "resized_output.pdf"

var resizeCmd = &cobra.Command{
	Use:   "resize",
	Short: "Resize every page of a PDF to exact target dimensions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResize(prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()), cmd.OutOrStdout())
	},
}

func runResize(p *prompt.Prompter, out io.Writer) error {
	banner(out, "PDF RESIZER - HIGH QUALITY")

	inputPath, err := p.SourcePDF()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nSpecify output dimensions:")
	width, err := p.Dimension("WIDTH")
	if err != nil {
		return err
	}
	height, err := p.Dimension("HEIGHT")
	if err != nil {
		return err
	}

	name, err := p.OutputName(defaultResizedName)
	if err != nil {
		return err
	}
	dir, err := p.OutputDir(filepath.Dir(inputPath))
	if err != nil {
		return err
	}
	outputPath := filepath.Join(dir, name)

	divider(out)
	fmt.Fprintln(out, "Summary:")
	fmt.Fprintf(out, "  Input file: %s\n", inputPath)
	fmt.Fprintf(out, "  Output file: %s\n", outputPath)
	fmt.Fprintf(out, "  Dimensions: %.0fx%.0f points\n", width, height)
	divider(out)

	ok, err := p.Confirm()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "Operation cancelled by user.")
		return nil
	}

	resizer := &resize.Resizer{
		Logger: logger,
		Progress: func(page, total int, t fit.Transform) {
			renderBar(out, "Resizing", page, total, fmt.Sprintf("page %d (scale %.3f)", page, t.Scale))
		},
	}
	res, err := resizer.Run(inputPath, outputPath, fit.Dim{Width: width, Height: height})
	fmt.Fprintln(out)
	if err != nil {
		return err
	}

	for _, page := range res.SkippedPages {
		warnf(out, "WARNING: Skipped page %d (unusable dimensions)\n", page)
	}

	banner(out, "Process completed successfully!")
	fmt.Fprintln(out, "Statistics:")
	fmt.Fprintf(out, "  - Pages processed: %d\n", res.Resized)
	if info, err := os.Stat(inputPath); err == nil {
		fmt.Fprintf(out, "  - Original file size: %.2f MB\n", sizeMB(info.Size()))
	}
	if info, err := os.Stat(res.OutputPath); err == nil {
		fmt.Fprintf(out, "  - Output file size: %.2f MB\n", sizeMB(info.Size()))
	}
	fmt.Fprintf(out, "  - Output file saved at: %s\n", res.OutputPath)
	return nil
}
