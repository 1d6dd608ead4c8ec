package gen

import (
	"os"
	"path/filepath"
)

// unformattedSuffix is appended to the output filename of a sidecar. It keeps
// the sidecar out of the package build.
const unformattedSuffix = ".unformatted"

// writeDebugUnformatted writes the raw template output next to the intended
// output file when formatting fails. Failures here are only logged.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(outDir, filename+unformattedSuffix), content, filePerm)
}
