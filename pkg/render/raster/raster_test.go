package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/willbeason/snowflake/pkg/errors"
	"github.com/willbeason/snowflake/pkg/geometry"
	"github.com/willbeason/snowflake/pkg/outline"
	"github.com/willbeason/snowflake/pkg/spec"
	"github.com/willbeason/snowflake/pkg/transforms"
)

var white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

func cross(t *testing.T) outline.Polygon {
	t.Helper()
	_, p, err := outline.Snowflake(spec.Star(4, 10, 2), geometry.XY{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRender(t *testing.T) {
	img, err := Render(cross(t), 100, 100, WithFill(white), WithBackground(color.Black), WithMargin(0))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"center", 50, 50, white},
		{"along east arm", 80, 50, white},
		{"corner", 2, 2, color.RGBA{A: 0xff}},
		{"between arms", 80, 80, color.RGBA{A: 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRenderTransform(t *testing.T) {
	// Twice layout scale centered at (40, 40): the east tip lands at x=60.
	place := transforms.Linear{Multiply: 2, Add: complex(40, 40)}
	img, err := Render(cross(t), 100, 100, WithFill(white), WithTransform(place))
	if err != nil {
		t.Fatal(err)
	}

	if got := img.RGBAAt(40, 40); got != white {
		t.Errorf("center pixel = %v, want white", got)
	}
	if got := img.RGBAAt(70, 40); got == white {
		t.Error("pixel beyond the east tip should be background")
	}
}

func TestRenderInvalid(t *testing.T) {
	tests := []struct {
		name          string
		p             outline.Polygon
		width, height int
	}{
		{"empty outline", nil, 10, 10},
		{"zero width", cross(t), 0, 10},
		{"too tall", cross(t), 10, MaxSize + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.p, tt.width, tt.height)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Render() error = %v, want %s", err, errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	img, err := Render(cross(t), 32, 24)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Errorf("decoded size = %dx%d, want 32x24", b.Dx(), b.Dy())
	}
}
