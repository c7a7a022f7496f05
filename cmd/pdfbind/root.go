package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logger = newLogger()

var rootCmd = &cobra.Command{
	Use:   "pdfbind",
	Short: "Merge and resize PDF/CBZ documents",
	Long: `pdfbind assembles folders of PDF and CBZ files into a single
high-quality PDF and resizes PDF pages to exact target dimensions
without cropping or distortion. Both commands prompt for their inputs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(resizeCmd)
}

// newLogger builds the process logger. LOG_LEVEL (loaded from .env when
// present) selects the level; warnings and up by default so job
// progress stays on the prompt side of the conversation.
func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		l.SetLevel(lvl)
	} else {
		l.SetLevel(logrus.WarnLevel)
	}
	return l
}
