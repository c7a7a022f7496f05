// Package utils provides utility functions for filename sanitization and
// unique artefact naming.
//
// Functions:
//   - SanitizeFilename: Returns a safe filename for storage.
//     Input: string (filename)
//     Output: string (sanitized filename)
//   - GenerateUUID: Returns a new UUID string.
//     Output: string (UUID)
//   - StagingName: Returns a unique temp output path inside a directory.
//
// Used for naming converted CBZ artefacts and staged output files.
package utils

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

func SanitizeFilename(name string) string {
	base := filepath.Base(name)
	safe := unsafeChars.ReplaceAllString(base, "_")
	if len(safe) > 100 {
		safe = safe[:100]
	}
	return safe
}

func GenerateUUID() string {
	return uuid.New().String()
}

// StagingName returns a unique hidden name for an in-progress output in
// dir. Staging in the destination directory keeps the final rename on
// one filesystem, so an interrupted run never leaves a partial file at
// the target path.
func StagingName(dir string) string {
	return filepath.Join(dir, fmt.Sprintf(".pdfbind-%s.tmp.pdf", GenerateUUID()))
}
