package media

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WebP decoding
)

// Downscale fits file into a maxEdge square when either side is larger. It
// reports false when the file is already small enough. The resized copy is
// written next to the original and must be removed by the caller.
//
// WebP cannot be re-encoded, so oversized WebP images are written as JPEG.
func Downscale(file LocalFile, maxEdge int) (LocalFile, bool, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return LocalFile{}, false, err
	}
	cfg, _, err := image.DecodeConfig(f)
	f.Close()
	if err != nil {
		return LocalFile{}, false, fmt.Errorf("decode %s: %w", file.Filename, err)
	}
	if cfg.Width <= maxEdge && cfg.Height <= maxEdge {
		return LocalFile{}, false, nil
	}

	img, err := imaging.Open(file.Path, imaging.AutoOrientation(true))
	if err != nil {
		return LocalFile{}, false, err
	}
	fitted := imaging.Fit(img, maxEdge, maxEdge, imaging.Lanczos)

	ext := strings.ToLower(filepath.Ext(file.Path))
	contentType := file.ContentType
	if _, err := imaging.FormatFromExtension(ext); err != nil {
		ext = ".jpg"
		contentType = "image/jpeg"
	}

	out := strings.TrimSuffix(file.Path, filepath.Ext(file.Path)) + ".fit" + ext
	if err := imaging.Save(fitted, out, imaging.JPEGQuality(85)); err != nil {
		return LocalFile{}, false, err
	}

	return LocalFile{
		Path:        out,
		Filename:    filepath.Base(out),
		ContentType: contentType,
	}, true, nil
}
