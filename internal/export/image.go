package export

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// SaveImage writes an image to disk, choosing the encoder from the file
// extension (.png, .jpg, .gif, ...).
func SaveImage(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
