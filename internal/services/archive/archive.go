package archive

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/phamqv/image-bundler/internal/models"
	"github.com/phamqv/image-bundler/pkg/utils"
)

// Assembler packages processed images for the response: a single image
// goes out raw, several become an in-memory ZIP archive.
type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Bundle writes every processed image into a ZIP archive at its
// derived filename. Duplicate names get an index suffix so no entry
// overwrites another.
func (a *Assembler) Bundle(images []*models.ProcessedImage) ([]byte, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("no images to bundle")
	}

	buffer := &bytes.Buffer{}
	zw := zip.NewWriter(buffer)
	used := make(map[string]bool, len(images))

	for i, img := range images {
		name := img.Filename
		if used[name] {
			base, ext := utils.SplitNameExt(name)
			for n := i + 1; ; n++ {
				candidate := fmt.Sprintf("%s_%d%s", base, n, ext)
				if !used[candidate] {
					name = candidate
					break
				}
			}
		}
		used[name] = true

		entry, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create archive entry %s: %w", name, err)
		}
		if _, err := entry.Write(img.Data); err != nil {
			return nil, fmt.Errorf("failed to write archive entry %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	return buffer.Bytes(), nil
}
