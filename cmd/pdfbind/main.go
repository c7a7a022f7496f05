// pdfbind is an interactive merger and resizer for PDF and CBZ
// documents: it assembles whole folders into a single high-quality PDF
// and rescales PDF pages to exact target dimensions.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
