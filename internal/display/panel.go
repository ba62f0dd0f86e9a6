package display

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/domain"
)

const (
	PanelWidth  = 320
	PanelHeight = 240

	// the 16x2 character status strip under the touch panel
	statusHeight = 40

	inkRadius = 4
)

var (
	canvasColor = color.RGBA{0x00, 0x00, 0xff, 0xff}
	statusColor = color.RGBA{0x20, 0x40, 0x20, 0xff}
	statusText  = color.RGBA{0xb0, 0xff, 0xb0, 0xff}
)

// Panel renders the touch panel and its status strip into an RGBA frame.
// When path is set the frame is written there as PNG after every update.
type Panel struct {
	mu     sync.Mutex
	frame  *image.RGBA
	region domain.Region
	texts  *Texts
	path   string
	log    zerolog.Logger
}

func NewPanel(texts *Texts, path string, log zerolog.Logger) *Panel {
	return &Panel{
		frame:  image.NewRGBA(image.Rect(0, 0, PanelWidth, PanelHeight+statusHeight)),
		region: domain.CaptureRegion,
		texts:  texts,
		path:   path,
		log:    log.With().Str("component", "panel").Logger(),
	}
}

func (p *Panel) Idle() {
	p.mu.Lock()
	defer p.mu.Unlock()

	draw.Draw(p.frame, p.frame.Bounds(), image.Black, image.Point{}, draw.Src)
	p.drawCanvasFrame()
	prompt := p.texts.Prompt()
	p.text(PanelWidth-80, 20+13, color.White, prompt[0])
	p.text(PanelWidth-80, 40+13, color.White, prompt[1])
	p.status(p.texts.Idle())
	p.flush()
}

func (p *Panel) ShowPrediction(class int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.status([2]string{p.texts.Prediction(class), ""})
	p.flush()
}

// StartSketch blanks the drawing area for a new gesture.
func (p *Panel) StartSketch() {
	p.mu.Lock()
	defer p.mu.Unlock()

	r := p.canvasRect()
	draw.Draw(p.frame, r, image.Black, image.Point{}, draw.Src)
	p.drawCanvasFrame()
}

// Plot stamps an ink dot. The frame is not flushed until the next status change.
func (p *Panel) Plot(pt domain.Point) {
	p.mu.Lock()
	defer p.mu.Unlock()

	r := vector.NewRasterizer(PanelWidth, PanelHeight)
	circle(r, float32(pt.X), float32(pt.Y), inkRadius)
	r.Draw(p.frame, image.Rect(0, 0, PanelWidth, PanelHeight), image.White, image.Point{})
}

// Frame returns a copy of the current frame.
func (p *Panel) Frame() *image.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := image.NewRGBA(p.frame.Bounds())
	draw.Draw(out, out.Bounds(), p.frame, image.Point{}, draw.Src)
	return out
}

func (p *Panel) canvasRect() image.Rectangle {
	return image.Rect(p.region.MinX, p.region.MinY, p.region.MaxX, p.region.MaxY)
}

func (p *Panel) drawCanvasFrame() {
	r := p.canvasRect()
	src := image.NewUniform(canvasColor)
	draw.Draw(p.frame, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), src, image.Point{}, draw.Src)
	draw.Draw(p.frame, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), src, image.Point{}, draw.Src)
	draw.Draw(p.frame, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), src, image.Point{}, draw.Src)
	draw.Draw(p.frame, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), src, image.Point{}, draw.Src)
}

func (p *Panel) status(lines [2]string) {
	strip := image.Rect(0, PanelHeight, PanelWidth, PanelHeight+statusHeight)
	draw.Draw(p.frame, strip, image.NewUniform(statusColor), image.Point{}, draw.Src)
	p.text(8, PanelHeight+16, statusText, lines[0])
	p.text(8, PanelHeight+34, statusText, lines[1])
}

func (p *Panel) text(x, y int, c color.Color, s string) {
	d := &font.Drawer{
		Dst:  p.frame,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func (p *Panel) flush() {
	if p.path == "" {
		return
	}
	if err := writePNG(p.path, p.frame); err != nil {
		p.log.Err(err).Str("path", p.path).Msg("write panel frame")
	}
}

// circle approximates a circle with four cubic arcs.
func circle(r *vector.Rasterizer, cx, cy, radius float32) {
	const k = 0.5522847
	c := radius * k
	r.MoveTo(cx+radius, cy)
	r.CubeTo(cx+radius, cy+c, cx+c, cy+radius, cx, cy+radius)
	r.CubeTo(cx-c, cy+radius, cx-radius, cy+c, cx-radius, cy)
	r.CubeTo(cx-radius, cy-c, cx-c, cy-radius, cx, cy-radius)
	r.CubeTo(cx+c, cy-radius, cx+radius, cy-c, cx+radius, cy)
	r.ClosePath()
}

func writePNG(path string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".panel-*.png")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close png: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}
