// Package prompt collects and validates job parameters interactively.
//
// The prompter is the only place that touches the terminal; the merge
// and resize cores receive validated paths and dimensions and stay free
// of global input/output, so they remain testable without a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrClosed is returned when the input stream ends mid-prompt.
var ErrClosed = errors.New("input closed")

type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// CleanPath strips surrounding quotes and a file:// prefix, which paths
// pasted from file managers tend to carry.
func CleanPath(s string) string {
	s = strings.Trim(s, `"'`)
	if rest, ok := strings.CutPrefix(s, "file://"); ok {
		s = rest
	}
	return s
}

// SourceDir prompts until an existing directory is entered.
func (p *Prompter) SourceDir() (string, error) {
	for {
		line, err := p.readLine("\nEnter the path of the folder containing PDF/CBZ files: ")
		if err != nil {
			return "", err
		}
		dir := CleanPath(line)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
		fmt.Fprintln(p.out, "ERROR: Folder does not exist. Please enter a valid path.")
	}
}

// SourcePDF prompts until an existing .pdf file is entered.
func (p *Prompter) SourcePDF() (string, error) {
	for {
		line, err := p.readLine("\nEnter the full path of the PDF file to resize: ")
		if err != nil {
			return "", err
		}
		path := CleanPath(line)
		info, statErr := os.Stat(path)
		switch {
		case statErr != nil || info.IsDir():
			fmt.Fprintln(p.out, "ERROR: File does not exist. Please enter a valid path.")
		case !strings.EqualFold(filepath.Ext(path), ".pdf"):
			fmt.Fprintln(p.out, "ERROR: File is not a PDF. Please enter a valid PDF file.")
		default:
			return path, nil
		}
	}
}

// OutputName prompts for an output file name, applying def on an empty
// answer and appending .pdf when missing.
func (p *Prompter) OutputName(def string) (string, error) {
	line, err := p.readLine(fmt.Sprintf("\nEnter output PDF file name (press Enter for default '%s'): ", def))
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	if !strings.HasSuffix(strings.ToLower(line), ".pdf") {
		line += ".pdf"
	}
	return line, nil
}

// OutputDir prompts for an output directory, defaulting to def and
// creating the directory when it does not exist yet. A directory that
// cannot be created falls back to the default rather than failing.
func (p *Prompter) OutputDir(def string) (string, error) {
	fmt.Fprintf(p.out, "\nDefault output directory: %s\n", def)
	line, err := p.readLine("Enter output directory (press Enter for default): ")
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	dir := CleanPath(line)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(p.out, "ERROR: Could not create directory: %v\n", err)
			fmt.Fprintf(p.out, "Using default directory: %s\n", def)
			return def, nil
		}
		fmt.Fprintf(p.out, "Directory created: %s\n", dir)
	}
	return dir, nil
}

// Dimension prompts until a positive whole number of points is entered.
func (p *Prompter) Dimension(name string) (float64, error) {
	for {
		line, err := p.readLine(fmt.Sprintf("Enter target %s in points (e.g., 1149): ", name))
		if err != nil {
			return 0, err
		}
		v, convErr := strconv.Atoi(line)
		switch {
		case convErr != nil:
			fmt.Fprintln(p.out, "ERROR: Please enter a valid integer number.")
		case v <= 0:
			fmt.Fprintln(p.out, "ERROR: Dimension must be a positive number.")
		default:
			return float64(v), nil
		}
	}
}

// Confirm returns false only when the user types "no".
func (p *Prompter) Confirm() (bool, error) {
	line, err := p.readLine("\nPress Enter to proceed or type 'no' to cancel: ")
	if err != nil {
		return false, err
	}
	return !strings.EqualFold(line, "no"), nil
}
