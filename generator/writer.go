package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/mcpgen/internal/fileutil"
)

// WriteFiles writes the generated project into outputDir, creating the
// directory when missing. Every file name is checked before anything is
// written, so a bad name leaves the directory untouched.
func (r *GenerateResult) WriteFiles(outputDir string) error {
	for _, f := range r.Files {
		if f.Name == "" || filepath.Base(f.Name) != f.Name {
			return fmt.Errorf("invalid file name %q: must not contain path separators", f.Name)
		}
	}

	if err := os.MkdirAll(outputDir, fileutil.DirMode); err != nil {
		return fmt.Errorf("generator: create %s: %w", outputDir, err)
	}
	for _, f := range r.Files {
		dst := filepath.Join(outputDir, f.Name)
		if err := os.WriteFile(dst, f.Content, fileutil.ReadableByAll); err != nil {
			return fmt.Errorf("generator: write %s: %w", dst, err)
		}
	}
	return nil
}
