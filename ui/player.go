package ui

import (
	"image"
	"image/draw"
	"image/gif"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// composeFrames flattens a GIF into full frames, applying each frame's
// disposal method, and returns them with their display durations.
func composeFrames(g *gif.GIF) ([]image.Image, []time.Duration) {
	if g == nil || len(g.Image) == 0 {
		return nil, nil
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}

	frames := make([]image.Image, 0, len(g.Image))
	delays := make([]time.Duration, 0, len(g.Image))
	canvasImg := image.NewRGBA(bounds)

	for i, frame := range g.Image {
		var previous *image.RGBA
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			previous = image.NewRGBA(bounds)
			draw.Draw(previous, bounds, canvasImg, bounds.Min, draw.Src)
		}

		draw.Draw(canvasImg, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)

		out := image.NewRGBA(bounds)
		draw.Draw(out, bounds, canvasImg, bounds.Min, draw.Src)
		frames = append(frames, out)

		delay := frameDelayFallback
		if i < len(g.Delay) && g.Delay[i] > 0 {
			delay = g.Delay[i]
		}
		delays = append(delays, time.Duration(delay)*10*time.Millisecond)

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvasImg, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvasImg = previous
		}
	}
	return frames, delays
}

// gifPlayer cycles the frames of a GIF on a canvas.Image.
type gifPlayer struct {
	Image *canvas.Image

	frames []image.Image
	delays []time.Duration

	mu   sync.Mutex
	stop chan struct{}
}

func newGIFPlayer(g *gif.GIF) *gifPlayer {
	frames, delays := composeFrames(g)
	p := &gifPlayer{frames: frames, delays: delays}
	var first image.Image
	if len(frames) > 0 {
		first = frames[0]
	}
	p.Image = canvas.NewImageFromImage(first)
	p.Image.FillMode = canvas.ImageFillContain
	return p
}

// Start plays the animation until Stop. Single-frame GIFs are left still.
func (p *gifPlayer) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != nil || len(p.frames) < 2 {
		return
	}
	stop := make(chan struct{})
	p.stop = stop

	go func() {
		i := 0
		timer := time.NewTimer(p.delays[0])
		defer timer.Stop()
		for {
			select {
			case <-stop:
				return
			case <-timer.C:
			}
			i = (i + 1) % len(p.frames)
			frame := p.frames[i]
			fyne.Do(func() {
				p.Image.Image = frame
				p.Image.Refresh()
			})
			timer.Reset(p.delays[i])
		}
	}()
}

// Stop halts playback. It is safe to call more than once.
func (p *gifPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
}
