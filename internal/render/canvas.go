package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/vulh1209/localtranscript-manual/internal/logging"
)

const defaultTextSize = 13

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextStyle describes how to render text.
// Text is vertically centered in the rectangle passed to DrawText;
// Align controls the horizontal placement.
type TextStyle struct {
	Color color.Color
	Size  float64 // points at logical scale; 0 means defaultTextSize
	Bold  bool
	Align TextAlign
}

var (
	fontsOnce   sync.Once
	regularFont *truetype.Font
	boldFont    *truetype.Font
	fontErr     error
)

func loadFonts() {
	fontsOnce.Do(func() {
		regularFont, fontErr = truetype.Parse(goregular.TTF)
		if fontErr != nil {
			return
		}
		boldFont, fontErr = truetype.Parse(gobold.TTF)
	})
}

type faceKey struct {
	size float64
	bold bool
}

// Canvas is an offscreen RGBA surface addressed in logical pixels.
// It is drawn at Supersample times the logical size and scaled down by Image.
type Canvas struct {
	width  int
	height int
	scale  int
	img    *image.RGBA
	faces  map[faceKey]font.Face
	Logger logging.Logger
}

// NewCanvas returns a canvas of the given logical size filled with bg.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		scale:  Supersample,
		faces:  map[faceKey]font.Face{},
		Logger: logging.NoopLogger{},
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width*c.scale, height*c.scale))
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return c
}

// Bounds returns the logical canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }

func (c *Canvas) scaled(rect image.Rectangle) image.Rectangle {
	return image.Rect(rect.Min.X*c.scale, rect.Min.Y*c.scale, rect.Max.X*c.scale, rect.Max.Y*c.scale)
}

func (c *Canvas) FillRect(rect image.Rectangle, col color.Color) {
	draw.Draw(c.img, c.scaled(rect), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillRoundRect fills rect with corners of the given radius.
// The radius is clamped to half the shorter side.
func (c *Canvas) FillRoundRect(rect image.Rectangle, radius int, col color.Color) {
	r := c.scaled(rect)
	rad := float64(radius * c.scale)
	if half := float64(min(r.Dx(), r.Dy())) / 2; rad > half {
		rad = half
	}
	src := image.NewUniform(col)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		py := float64(y) + 0.5
		dy := 0.0
		switch {
		case py < float64(r.Min.Y)+rad:
			dy = float64(r.Min.Y) + rad - py
		case py > float64(r.Max.Y)-rad:
			dy = py - (float64(r.Max.Y) - rad)
		}
		dx := 0
		if dy > 0 {
			dx = int(math.Round(rad - math.Sqrt(math.Max(rad*rad-dy*dy, 0))))
		}
		span := image.Rect(r.Min.X+dx, y, r.Max.X-dx, y+1)
		draw.Draw(c.img, span, src, image.Point{}, draw.Src)
	}
}

// FillCircle fills a circle centered at center.
func (c *Canvas) FillCircle(center image.Point, radius int, col color.Color) {
	rect := image.Rect(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius)
	c.FillRoundRect(rect, radius, col)
}

// HLine draws a one-pixel horizontal rule at y between x0 and x1.
func (c *Canvas) HLine(x0, x1, y int, col color.Color) {
	c.FillRect(image.Rect(x0, y, x1, y+1), col)
}

func (c *Canvas) face(style TextStyle) font.Face {
	size := style.Size
	if size <= 0 {
		size = defaultTextSize
	}
	key := faceKey{size: size, bold: style.Bold}
	if f, ok := c.faces[key]; ok {
		return f
	}

	loadFonts()
	ttf := regularFont
	if style.Bold && boldFont != nil {
		ttf = boldFont
	}
	var f font.Face
	if fontErr != nil || ttf == nil {
		c.Logger.Errorf("render", "font parse failed, using basicfont: %v", fontErr)
		f = basicfont.Face7x13
	} else {
		f = truetype.NewFace(ttf, &truetype.Options{Size: size * float64(c.scale), DPI: 72, Hinting: font.HintingFull})
	}
	c.faces[key] = f
	return f
}

// MeasureText returns the advance width of text in logical pixels.
func (c *Canvas) MeasureText(text string, style TextStyle) int {
	w := font.MeasureString(c.face(style), text).Ceil()
	return (w + c.scale - 1) / c.scale
}

// DrawText draws text inside rect and returns its width in logical pixels.
func (c *Canvas) DrawText(text string, rect image.Rectangle, style TextStyle) int {
	face := c.face(style)
	col := style.Color
	if col == nil {
		col = Foreground
	}
	r := c.scaled(rect)

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	baseline := r.Min.Y + (r.Dy()-(ascent+descent))/2 + ascent

	width := font.MeasureString(face, text).Ceil()
	x := r.Min.X
	switch style.Align {
	case TextAlignCenter:
		x = r.Min.X + (r.Dx()-width)/2
	case TextAlignRight:
		x = r.Max.X - width
	}

	drawer := &font.Drawer{Dst: c.img, Src: image.NewUniform(col), Face: face}
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
	return (width + c.scale - 1) / c.scale
}

// Image returns the canvas scaled down to its logical size.
func (c *Canvas) Image() image.Image {
	if c.scale == 1 {
		return c.img
	}
	dst := image.NewRGBA(c.Bounds())
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), c.img, c.img.Bounds(), xdraw.Src, nil)
	return dst
}

// EncodePNG writes the scaled canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}
