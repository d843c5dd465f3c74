// Package source loads the image the user picks points on. It keeps the
// original file bytes for upload next to the decoded pixels used for display.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // Register GIF decoder
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/dixieflatline76/Wiggle/pkg/picker"
)

// MaxFileSize caps how much of an uploaded file is read.
const MaxFileSize = 64 << 20

// ErrUnsupportedFormat is returned when the data is not a decodable image.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ErrTooLarge is returned when the file exceeds MaxFileSize.
var ErrTooLarge = errors.New("image file too large")

// Extensions lists the file extensions offered in the open dialog.
var Extensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// Image is a decoded upload.
type Image struct {
	Name        string
	ContentType string
	Data        []byte
	Pixels      image.Image
	Natural     picker.Size
}

// Open reads and decodes the image at path.
func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()
	return Read(filepath.Base(path), f)
}

// Read decodes an image from r. The bytes are kept verbatim so the upload
// matches exactly what was decoded here. EXIF orientation is not applied:
// picked points must refer to the pixel grid the service will decode.
func Read(name string, r io.Reader) (*Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	if len(data) > MaxFileSize {
		return nil, ErrTooLarge
	}

	pixels, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, name, err)
	}

	b := pixels.Bounds()
	return &Image{
		Name:        name,
		ContentType: contentType(name, data),
		Data:        data,
		Pixels:      pixels,
		Natural:     picker.Size{Width: float64(b.Dx()), Height: float64(b.Dy())},
	}, nil
}

// Display returns a copy of the image that fits in maxDim×maxDim, for use as
// the on-screen texture. Smaller images are returned unchanged.
func (img *Image) Display(maxDim int) image.Image {
	b := img.Pixels.Bounds()
	if maxDim <= 0 || (b.Dx() <= maxDim && b.Dy() <= maxDim) {
		return img.Pixels
	}
	return imaging.Fit(img.Pixels, maxDim, maxDim, imaging.Lanczos)
}

func contentType(name string, data []byte) string {
	ct := http.DetectContentType(data)
	if ct != "application/octet-stream" {
		return ct
	}
	// DetectContentType does not know TIFF.
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tif", ".tiff":
		return "image/tiff"
	}
	return ct
}
