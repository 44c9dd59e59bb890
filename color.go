package tween

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorModel identifies the color space a [Color]'s channels live in.
type ColorModel uint8

const (
	// RGBAModel colors carry red, green, blue and alpha channels.
	RGBAModel ColorModel = iota
	// GrayModel colors carry a white level and an alpha channel.
	GrayModel
	// HSBModel colors carry hue, saturation, brightness and alpha channels.
	HSBModel
)

func (m ColorModel) String() string {
	switch m {
	case RGBAModel:
		return "rgba"
	case GrayModel:
		return "gray"
	case HSBModel:
		return "hsb"
	}
	return fmt.Sprintf("ColorModel(%d)", uint8(m))
}

// Color is a color in one of three models: RGBA, grayscale, or HSB. All
// channels are nominally in [0, 1]; hue wraps at 1. Values are not clamped,
// so blending may briefly leave the nominal range.
//
// Colors encode in their native model. RGBA and HSB colors encode their four
// channels in order, alpha last; grayscale colors encode as
// [white, alpha, 0, 0] with two trailing padding slots that are always zero
// on encode and ignored on decode. The bound reconstruction function
// remembers the model. Decoding a grayscale-produced vector with an
// RGBA-bound reconstructor therefore yields a visually wrong but well-formed
// color; keep endpoints in one model to avoid this.
//
// The zero Color is transparent RGBA black.
type Color struct {
	model      ColorModel
	c0, c1, c2 float64
	alpha      float64
}

var (
	_ Interpolatable = Color{}
	_ color.Color    = Color{}
)

// RGBA returns the color with the given red, green, blue and alpha channels.
func RGBA(r, g, b, a float64) Color {
	return Color{model: RGBAModel, c0: r, c1: g, c2: b, alpha: a}
}

// Gray returns the grayscale color with the given white level and alpha.
func Gray(white, alpha float64) Color {
	return Color{model: GrayModel, c0: white, alpha: alpha}
}

// HSB returns the color with the given hue, saturation, brightness and alpha
// channels. Hue is in [0, 1], not degrees.
func HSB(h, s, b, a float64) Color {
	return Color{model: HSBModel, c0: h, c1: s, c2: b, alpha: a}
}

// ColorFromColor converts any [color.Color] to an RGBA-model Color.
//
// Fully transparent colors cannot be un-premultiplied and yield
// [ErrTransparentColor].
func ColorFromColor(c color.Color) (Color, error) {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return Color{}, ErrTransparentColor
	}
	_, _, _, a := c.RGBA()
	return RGBA(cf.R, cf.G, cf.B, float64(a)/0xffff), nil
}

// Model returns the color's model.
func (c Color) Model() ColorModel { return c.model }

// Alpha returns the color's alpha channel.
func (c Color) Alpha() float64 { return c.alpha }

func (c Color) String() string {
	switch c.model {
	case GrayModel:
		return fmt.Sprintf("gray(%g, %g)", c.c0, c.alpha)
	case HSBModel:
		return fmt.Sprintf("hsba(%g, %g, %g, %g)", c.c0, c.c1, c.c2, c.alpha)
	}
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.c0, c.c1, c.c2, c.alpha)
}

// AsRGBA converts the color to the RGBA model. RGBA colors are returned
// unchanged; grayscale replicates the white level into the three color
// channels; HSB converts through HSV color math.
func (c Color) AsRGBA() Color {
	switch c.model {
	case GrayModel:
		return RGBA(c.c0, c.c0, c.c0, c.alpha)
	case HSBModel:
		cf := colorful.Hsv(c.c0*360, c.c1, c.c2)
		return RGBA(cf.R, cf.G, cf.B, c.alpha)
	}
	return c
}

// RGBA implements [color.Color], with channels clamped to [0, 1] and alpha
// premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	rc := c.AsRGBA()
	clamp := func(v float64) float64 {
		return min(max(v, 0), 1)
	}
	af := clamp(rc.alpha)
	r = uint32(clamp(rc.c0)*af*0xffff + 0.5)
	g = uint32(clamp(rc.c1)*af*0xffff + 0.5)
	b = uint32(clamp(rc.c2)*af*0xffff + 0.5)
	a = uint32(af*0xffff + 0.5)
	return r, g, b, a
}

// Lerp linearly interpolates between two colors. Colors sharing a model blend
// channel-wise in that model; colors in different models blend in RGBA.
func (c Color) Lerp(o Color, t float64) Color {
	if c.model != o.model {
		c, o = c.AsRGBA(), o.AsRGBA()
	}
	return Color{
		model: c.model,
		c0:    lerp(c.c0, o.c0, t),
		c1:    lerp(c.c1, o.c1, t),
		c2:    lerp(c.c2, o.c2, t),
		alpha: lerp(c.alpha, o.alpha, t),
	}
}

// Components returns the arity of the color encoding.
func (c Color) Components() int { return 4 }

// Vectorize encodes the color in its native model: [r, g, b, a] for RGBA,
// [white, alpha, 0, 0] for grayscale, [h, s, b, a] for HSB.
func (c Color) Vectorize() (Vector, error) {
	switch c.model {
	case RGBAModel, HSBModel:
		return NewVector([]float64{c.c0, c.c1, c.c2, c.alpha}, colorReconstructor(c.model)), nil
	case GrayModel:
		return NewVector([]float64{c.c0, c.alpha, 0, 0}, colorReconstructor(GrayModel)), nil
	}
	return Vector{}, &ErrUnsupportedColorModel{Model: c.model}
}

func colorReconstructor(model ColorModel) func([]float64) (Interpolatable, error) {
	return func(values []float64) (Interpolatable, error) {
		return ColorFromValues(model, values)
	}
}

// ColorFromValues reconstructs a color of the given model from its four-value
// encoding.
func ColorFromValues(model ColorModel, values []float64) (Color, error) {
	if err := checkArity(4, len(values)); err != nil {
		return Color{}, err
	}
	switch model {
	case RGBAModel:
		return RGBA(values[0], values[1], values[2], values[3]), nil
	case GrayModel:
		return Gray(values[0], values[1]), nil
	case HSBModel:
		return HSB(values[0], values[1], values[2], values[3]), nil
	}
	return Color{}, &ErrUnsupportedColorModel{Model: model}
}
