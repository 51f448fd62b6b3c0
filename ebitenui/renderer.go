// Package ebitenui draws twig shapes with Ebitengine and feeds window input
// into a twig.Ui.
//
// The simplest way to show a tree is Run, which opens a window and runs the
// loop:
//
//	ui := twig.New[MyEvent](root, twig.Size{Width: 800, Height: 600})
//	if err := ebitenui.Run(ui, ebitenui.DefaultRunConfig()); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, embed a Game in your own ebiten.Game.
package ebitenui

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/twig"
)

// ErrUnsupportedShape is returned by Draw for a shape kind the renderer does
// not know how to draw.
var ErrUnsupportedShape = errors.New("ebitenui: unsupported shape kind")

// pointSize is the side in pixels of the square drawn for a point shape.
const pointSize = 2

// lineWidth is the stroke width in pixels of line shapes.
const lineWidth = 1

// placeholderColor marks images that were never registered.
var placeholderColor = color.RGBA{R: 255, A: 255, B: 255}

type faceKey struct {
	font string
	size float64
}

// Renderer turns twig shapes into Ebitengine draw calls. Fonts and images
// are resolved by their logical identifiers; register custom ones before the
// first Draw. A Renderer is not safe for concurrent use.
type Renderer struct {
	sources map[string]*text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
	images  map[string]*ebiten.Image

	warned map[string]bool
}

// NewRenderer creates a renderer whose default and button fonts are Go
// Regular.
func NewRenderer() (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitenui: load default font: %w", err)
	}
	r := &Renderer{
		sources: make(map[string]*text.GoTextFaceSource),
		faces:   make(map[faceKey]*text.GoTextFace),
		images:  make(map[string]*ebiten.Image),
		warned:  make(map[string]bool),
	}
	r.sources[twig.Font{Kind: twig.FontDefault}.String()] = src
	r.sources[twig.Font{Kind: twig.FontButton}.String()] = src
	return r, nil
}

// RegisterFont parses TTF or OTF data and binds it to font.
func (r *Renderer) RegisterFont(font twig.Font, ttfData []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return fmt.Errorf("ebitenui: parse font %s: %w", font, err)
	}
	key := font.String()
	r.sources[key] = src
	for k := range r.faces {
		if k.font == key {
			delete(r.faces, k)
		}
	}
	return nil
}

// RegisterImage binds img to the logical image id.
func (r *Renderer) RegisterImage(id twig.Image, img *ebiten.Image) {
	r.images[id.String()] = img
}

// LoadImage reads an image file and binds it to id.
func (r *Renderer) LoadImage(id twig.Image, path string) error {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return fmt.Errorf("ebitenui: load image %s: %w", id, err)
	}
	r.RegisterImage(id, img)
	return nil
}

// Draw renders shapes onto dst, in order, mapping the logical space onto the
// whole of dst. Shapes of unknown kinds are skipped and reported in the
// returned error; everything else is drawn.
func (r *Renderer) Draw(dst *ebiten.Image, shapes []twig.Shape) error {
	b := dst.Bounds()
	viewport := twig.Size{Width: b.Dx(), Height: b.Dy()}
	var errs []error
	for i := range shapes {
		if err := r.drawShape(dst, &shapes[i], viewport); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *Renderer) drawShape(dst *ebiten.Image, s *twig.Shape, viewport twig.Size) error {
	switch s.Kind {
	case twig.ShapePoint:
		x, y := twig.LogicalToPixel(s.From, viewport)
		vector.DrawFilledRect(dst, float32(x)-pointSize/2, float32(y)-pointSize/2,
			pointSize, pointSize, toRGBA(s.Color), false)
	case twig.ShapeLine:
		x0, y0 := twig.LogicalToPixel(s.From, viewport)
		x1, y1 := twig.LogicalToPixel(s.To, viewport)
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1),
			lineWidth, toRGBA(s.Color), true)
	case twig.ShapeRectangle:
		x, y, w, h := pixelRect(s.From, s.To, viewport)
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), toRGBA(s.Color), false)
	case twig.ShapeImage:
		r.drawImage(dst, s, viewport)
	case twig.ShapeText:
		r.drawText(dst, s, viewport)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedShape, s.Kind)
	}
	return nil
}

func (r *Renderer) drawImage(dst *ebiten.Image, s *twig.Shape, viewport twig.Size) {
	x, y, w, h := pixelRect(s.From, s.To, viewport)
	img, ok := r.images[s.Image.String()]
	if !ok {
		r.warnOnce("image "+s.Image.String(), "ebitenui: image %s not registered, using magenta placeholder", s.Image)
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), placeholderColor, false)
		return
	}
	ib := img.Bounds()
	if ib.Dx() == 0 || ib.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(ib.Dx()), h/float64(ib.Dy()))
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
}

func (r *Renderer) drawText(dst *ebiten.Image, s *twig.Shape, viewport twig.Size) {
	if s.Text == "" || s.Em <= 0 {
		return
	}
	size := textPixelSize(s.Em, viewport)
	face := r.face(s.Font, size)
	if face == nil {
		return
	}
	x, y := twig.LogicalToPixel(s.From, viewport)
	op := &text.DrawOptions{}
	// text.Draw positions the top of the line box; the shape anchors its
	// bottom-left corner.
	op.GeoM.Translate(x, y-size)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(dst, s.Text, face, op)
}

// face returns a cached face of font at size pixels, falling back to the
// default font for unregistered custom fonts.
func (r *Renderer) face(font twig.Font, size float64) *text.GoTextFace {
	name := font.String()
	src, ok := r.sources[name]
	if !ok {
		r.warnOnce("font "+name, "ebitenui: font %s not registered, using default", font)
		name = twig.Font{Kind: twig.FontDefault}.String()
		src, ok = r.sources[name]
		if !ok {
			return nil
		}
	}
	key := faceKey{font: name, size: size}
	if f, ok := r.faces[key]; ok {
		return f
	}
	f := &text.GoTextFace{Source: src, Size: size}
	r.faces[key] = f
	return f
}

func (r *Renderer) warnOnce(key, format string, args ...any) {
	if r.warned[key] {
		return
	}
	r.warned[key] = true
	log.Printf(format, args...)
}

// pixelRect converts two logical corners into a top-left pixel rectangle.
func pixelRect(from, to twig.Vec2, viewport twig.Size) (x, y, w, h float64) {
	x0, y0 := twig.LogicalToPixel(from, viewport)
	x1, y1 := twig.LogicalToPixel(to, viewport)
	return math.Min(x0, x1), math.Min(y0, y1), math.Abs(x1 - x0), math.Abs(y1 - y0)
}

// textPixelSize converts an em height in logical units to pixels. The logical
// space spans 2 units over the viewport height.
func textPixelSize(em float64, viewport twig.Size) float64 {
	return em / 2 * float64(viewport.Height)
}

func toRGBA(c twig.Color) color.RGBA {
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 255}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
