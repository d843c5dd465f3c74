package submit

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"io"
	"path/filepath"
	"strings"
)

// Result is a generated wigglegram.
type Result struct {
	RequestID string
	Data      []byte
	Frames    int
	// First is the first frame, used as a still when animation is unavailable.
	First image.Image
	// Anim is the decoded animation.
	Anim *gif.GIF
}

func decodeResult(requestID string, data []byte) (*Result, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotGIF, err)
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("%w: no frames", ErrNotGIF)
	}
	return &Result{
		RequestID: requestID,
		Data:      data,
		Frames:    len(g.Image),
		First:     g.Image[0],
		Anim:      g,
	}, nil
}

// Save writes the GIF exactly as received.
func (r *Result) Save(w io.Writer) error {
	if _, err := w.Write(r.Data); err != nil {
		return fmt.Errorf("saving GIF: %w", err)
	}
	return nil
}

// FileName suggests a download name derived from the source image name.
func FileName(source string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "wigglegram"
	}
	return base + "-wiggle.gif"
}
