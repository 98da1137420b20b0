// Package raster fills snowflake outlines into images.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/willbeason/snowflake/pkg/errors"
	"github.com/willbeason/snowflake/pkg/outline"
	"github.com/willbeason/snowflake/pkg/transforms"
	"golang.org/x/image/vector"
)

const (
	MinSize = 1
	MaxSize = 8192
)

// lightBlue is the default fill.
var lightBlue = color.RGBA{R: 0x7f, G: 0xaf, B: 0xff, A: 0xff}

// Option configures rendering.
type Option func(*renderer)

type renderer struct {
	fill       color.Color
	background color.Color
	margin     float64
	transform  *transforms.Linear
}

// WithFill sets the outline color.
func WithFill(c color.Color) Option { return func(r *renderer) { r.fill = c } }

// WithBackground sets the color behind the outline.
func WithBackground(c color.Color) Option { return func(r *renderer) { r.background = c } }

// WithMargin sets the pixels left clear on every side when fitting.
func WithMargin(px float64) Option { return func(r *renderer) { r.margin = px } }

// WithTransform maps layout coordinates to pixels with t instead of fitting
// the outline to the image.
func WithTransform(t transforms.Linear) Option { return func(r *renderer) { r.transform = &t } }

// Render fills p into a new width by height image. Unless WithTransform is
// given, p is scaled to fit the image and centered.
func Render(p outline.Polygon, width, height int, opts ...Option) (*image.RGBA, error) {
	if width < MinSize || width > MaxSize || height < MinSize || height > MaxSize {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"image size %dx%d outside %d..%d", width, height, MinSize, MaxSize)
	}
	if len(p) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cannot render an empty outline")
	}

	r := renderer{
		fill:       lightBlue,
		background: color.Black,
		margin:     float64(min(width, height)) / 20,
	}
	for _, opt := range opts {
		opt(&r)
	}

	t := r.fit(p, width, height)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)

	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Over
	for i, v := range transforms.ApplyAll(t, p) {
		if i == 0 {
			z.MoveTo(float32(v.X), float32(v.Y))
			continue
		}
		z.LineTo(float32(v.X), float32(v.Y))
	}
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(r.fill), image.Point{})

	return img, nil
}

func (r *renderer) fit(p outline.Polygon, width, height int) transforms.Linear {
	if r.transform != nil {
		return *r.transform
	}
	lo, hi := p.Bounds()
	return transforms.Fit(lo, hi, float64(width), float64(height), r.margin)
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return nil
}
